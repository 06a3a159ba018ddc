package config

// GalleryConfig describes a button gallery: the ambient defaults shared by
// every button plus the buttons themselves. Enum fields use the component
// kit's token vocabulary and are validated before being parsed.
type GalleryConfig struct {
	Theme           string         `yaml:"theme" validate:"omitempty,oneof=default dark"`
	Size            string         `yaml:"size" validate:"omitempty,oneof=small medium large"`
	Shape           string         `yaml:"shape" validate:"omitempty,oneof=default round circle"`
	Color           string         `yaml:"color" validate:"omitempty,oneof=default primary danger link"`
	Variant         string         `yaml:"variant" validate:"omitempty,oneof=solid outlined dashed text link"`
	Direction       string         `yaml:"direction" validate:"omitempty,oneof=ltr rtl"`
	Disabled        *bool          `yaml:"disabled"`
	AutoInsertSpace *bool          `yaml:"auto_insert_space"`
	Buttons         []ButtonConfig `yaml:"buttons" validate:"required,min=1,dive"`
}

// ButtonConfig describes a single gallery button.
type ButtonConfig struct {
	Label   string `yaml:"label"`
	Type    string `yaml:"type" validate:"omitempty,oneof=default primary dashed link text"`
	Danger  bool   `yaml:"danger"`
	Color   string `yaml:"color" validate:"omitempty,oneof=default primary danger link"`
	Variant string `yaml:"variant" validate:"omitempty,oneof=solid outlined dashed text link"`
	Shape   string `yaml:"shape" validate:"omitempty,oneof=default round circle"`
	Size    string `yaml:"size" validate:"omitempty,oneof=small medium large"`

	Disabled *bool `yaml:"disabled"`
	Ghost    bool  `yaml:"ghost"`
	Block    bool  `yaml:"block"`

	Href         string `yaml:"href"`
	Icon         string `yaml:"icon"`
	IconPosition string `yaml:"icon_position" validate:"omitempty,oneof=start end"`

	Loading        bool `yaml:"loading"`
	LoadingDelayMS int  `yaml:"loading_delay_ms" validate:"gte=0"`

	AutoInsertSpace *bool `yaml:"auto_insert_space"`
	AutoFocus       bool  `yaml:"autofocus"`
}
