package domain

// ModuleKind enumerates the toolbar modules. Each kind carries a static
// feature list and the WCAG criteria it addresses.
type ModuleKind string

const (
	ModuleVisual      ModuleKind = "module_visual"
	ModuleNavigation  ModuleKind = "module_navigation"
	ModuleContent     ModuleKind = "module_content"
	ModuleARIA        ModuleKind = "module_aria"
	ModuleInteraction ModuleKind = "module_interaction"
)

// ModuleKinds lists every module in display order.
var ModuleKinds = []ModuleKind{ //nolint: gochecknoglobals
	ModuleVisual,
	ModuleNavigation,
	ModuleContent,
	ModuleARIA,
	ModuleInteraction,
}

// ModuleDescriptor is the static configuration data of a module kind.
type ModuleDescriptor struct {
	Title    string
	WCAG     []string
	Features []string
	// EnabledByDefault is the default "enabled" flag of the module.
	EnabledByDefault bool
	// DisabledFeatures are the features that default to off.
	DisabledFeatures []string
}

var moduleDescriptors = map[ModuleKind]ModuleDescriptor{ //nolint: gochecknoglobals
	ModuleVisual: {
		Title: "Visual Adjustments",
		WCAG:  []string{"1.4.3", "1.4.4", "1.4.12"},
		Features: []string{
			"high_contrast", "grayscale", "invert_colors", "low_saturation", "text_resize",
			"text_spacing", "readable_font", "dyslexia_font", "cursor_size", "reading_guide", "reading_mask",
		},
		EnabledByDefault: true,
	},
	ModuleNavigation: {
		Title:            "Navigation & Focus",
		WCAG:             []string{"2.1.1", "2.4.1", "2.4.7", "2.4.11"},
		Features:         []string{"skip_links", "focus_ring", "focus_not_obscured", "keyboard_nav", "link_highlighting"},
		EnabledByDefault: true,
	},
	ModuleContent: {
		Title:            "Content & Reading",
		WCAG:             []string{"1.4.1", "2.2.2", "2.3.1"},
		Features:         []string{"animation_pause", "hide_images", "highlight_links", "highlight_headings"},
		EnabledByDefault: true,
	},
	ModuleARIA: {
		Title:    "ARIA & Semantics",
		WCAG:     []string{"1.3.1", "2.4.4", "4.1.2", "4.1.3"},
		Features: []string{"landmark_roles", "form_labels", "link_purpose", "live_regions"},
	},
	ModuleInteraction: {
		Title:            "Interaction (WCAG 2.2)",
		WCAG:             []string{"2.5.7", "2.5.8"},
		Features:         []string{"target_size", "drag_alternatives"},
		EnabledByDefault: true,
		DisabledFeatures: []string{"drag_alternatives"},
	},
}

// Descriptor returns the static description of the module kind.
func (k ModuleKind) Descriptor() (ModuleDescriptor, bool) {
	d, ok := moduleDescriptors[k]

	return d, ok
}

// Valid reports whether k is a known module kind.
func (k ModuleKind) Valid() bool {
	_, ok := moduleDescriptors[k]

	return ok
}

// HasFeature reports whether the module kind defines the given feature.
func (k ModuleKind) HasFeature(feature string) bool {
	d, ok := moduleDescriptors[k]
	if !ok {
		return false
	}
	for _, f := range d.Features {
		if f == feature {
			return true
		}
	}

	return false
}

// ModuleSettings is the persisted state of one module.
type ModuleSettings struct {
	Enabled  bool            `json:"enabled"`
	Features map[string]bool `json:"features"`
	Settings map[string]any  `json:"settings,omitempty"`
}

// FeatureEnabled reports whether a feature is active, which requires the
// module itself to be enabled.
func (m ModuleSettings) FeatureEnabled(feature string) bool {
	return m.Enabled && m.Features[feature]
}

// GlobalSettings holds toolbar-wide options.
type GlobalSettings struct {
	ToolbarEnabled  bool   `json:"toolbar_enabled"`
	ToolbarPosition string `json:"toolbar_position"`
	ToolbarTheme    string `json:"toolbar_theme"`
	SafeMode        bool   `json:"safe_mode"`
	RespectPrefers  bool   `json:"respect_prefers"`
}

// ScannerSettings holds the content scanner options.
type ScannerSettings struct {
	BatchSize     int      `json:"batch_size"`
	AutoScan      bool     `json:"auto_scan"`
	ScanOnPublish bool     `json:"scan_on_publish"`
	MaxPages      int      `json:"max_pages"`
	ExcludedTypes []string `json:"excluded_types"`
}

// Settings is the complete settings document.
type Settings struct {
	Global  GlobalSettings                `json:"global"`
	Modules map[ModuleKind]ModuleSettings `json:"modules"`
	Scanner ScannerSettings               `json:"scanner"`
}

// Batch size bounds shared by the configuration and the stored settings.
const (
	MinBatchSize     = 10
	MaxBatchSize     = 100
	DefaultBatchSize = 50
)

// ClampBatchSize keeps n within MinBatchSize..MaxBatchSize. Non-positive
// values fall back to DefaultBatchSize.
func ClampBatchSize(n int) int {
	switch {
	case n <= 0:
		return DefaultBatchSize
	case n < MinBatchSize:
		return MinBatchSize
	case n > MaxBatchSize:
		return MaxBatchSize
	default:
		return n
	}
}
