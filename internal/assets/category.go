// SPDX-License-Identifier: MPL-2.0

package assets

// Directory names for the per-category source subtrees inside a project.
// These are the on-disk layout convention shared with the authoring tools;
// renaming any of them is a breaking change for existing projects.
const (
	SoundBanksDirName       = "soundbanks"
	CollectionsDirName      = "collections"
	SoundsDirName           = "sounds"
	EventsDirName           = "events"
	PipelinesDirName        = "pipelines"
	AttenuatorsDirName      = "attenuators"
	SwitchesDirName         = "switches"
	SwitchContainersDirName = "switch_containers"
	RtpcDirName             = "rtpc"
	EffectsDirName          = "effects"
	EnvironmentsDirName     = "environments"
)

type (
	// Category describes one kind of asset: where its JSON sources live
	// relative to the project root, which binary schema compiles them, and
	// how its source files are enumerated.
	Category struct {
		// Name identifies the category in logs and error messages.
		Name string
		// Dir is the source subdirectory under the project root. Empty for
		// categories matched by filename suffix at the project root itself.
		Dir string
		// Schema is the schema file name, resolved against the configured
		// schema search paths at build time.
		Schema string
		// Pattern is the glob matching the category's source files, relative
		// to Dir (or to the project root when Dir is empty).
		Pattern string
		// Recursive reports whether Pattern descends into subdirectories.
		Recursive bool
	}
)

// categories is the single source of truth for the directory-to-schema
// mapping. Order matters: it is the enumeration order of a build, and the
// first two entries are the suffix-matched top-level categories. Adding a
// new asset type means appending one entry here (and, if the type gets its
// own output extension, one rule in extensionRules).
var categories = []Category{
	{Name: "config", Dir: "", Schema: "engine_config_definition.bfbs", Pattern: "*.config.json"},
	{Name: "buses", Dir: "", Schema: "buses_definition.bfbs", Pattern: "*.buses.json"},
	{Name: "soundbanks", Dir: SoundBanksDirName, Schema: "sound_bank_definition.bfbs", Pattern: "**/*.json", Recursive: true},
	{Name: "collections", Dir: CollectionsDirName, Schema: "collection_definition.bfbs", Pattern: "**/*.json", Recursive: true},
	{Name: "sounds", Dir: SoundsDirName, Schema: "sound_definition.bfbs", Pattern: "**/*.json", Recursive: true},
	{Name: "events", Dir: EventsDirName, Schema: "event_definition.bfbs", Pattern: "**/*.json", Recursive: true},
	{Name: "pipelines", Dir: PipelinesDirName, Schema: "pipeline_definition.bfbs", Pattern: "**/*.json", Recursive: true},
	{Name: "attenuators", Dir: AttenuatorsDirName, Schema: "attenuation_definition.bfbs", Pattern: "**/*.json", Recursive: true},
	{Name: "switches", Dir: SwitchesDirName, Schema: "switch_definition.bfbs", Pattern: "**/*.json", Recursive: true},
	{Name: "switch_containers", Dir: SwitchContainersDirName, Schema: "switch_container_definition.bfbs", Pattern: "**/*.json", Recursive: true},
	{Name: "rtpc", Dir: RtpcDirName, Schema: "rtpc_definition.bfbs", Pattern: "**/*.json", Recursive: true},
	{Name: "effects", Dir: EffectsDirName, Schema: "effect_definition.bfbs", Pattern: "**/*.json", Recursive: true},
	{Name: "environments", Dir: EnvironmentsDirName, Schema: "environment_definition.bfbs", Pattern: "**/*.json", Recursive: true},
}

// Categories returns the ordered asset category table. The returned slice is
// a copy; callers may not mutate the registry.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}
