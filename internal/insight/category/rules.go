package category

// System keys used by the scanner-component aggregator.
const (
	SystemNervous     = "nervesystem"
	SystemHormonal    = "hormonsystem"
	SystemDigestive   = "fordøyelsessystem"
	SystemCirculatory = "sirkulasjonssystem"
	SystemRespiratory = "respirasjonssystem"
	SystemMuscular    = "muskelsystem"
	SystemImmune      = "immunsystem"
	SystemOther       = "annet"
)

// SystemRules maps scanner-component category labels to system keys.
// Order matters: the aggregator applies these with LastMatch.
var SystemRules = []Rule{
	{Pattern: "nervesystem", Category: SystemNervous},
	{Pattern: "hormoner", Category: SystemHormonal},
	{Pattern: "fordøyelse", Category: SystemDigestive},
	{Pattern: "sirkulasjon", Category: SystemCirculatory},
	{Pattern: "respirasjon", Category: SystemRespiratory},
	{Pattern: "muskulatur", Category: SystemMuscular},
	{Pattern: "immunforsvar", Category: SystemImmune},
}

var systemDisplayNames = map[string]string{
	SystemNervous:     "Nervesystem",
	SystemHormonal:    "Hormonsystem",
	SystemDigestive:   "Fordøyelsessystem",
	SystemCirculatory: "Sirkulasjonssystem",
	SystemRespiratory: "Respirasjonssystem",
	SystemMuscular:    "Muskelsystem",
	SystemImmune:      "Immunsystem",
	SystemOther:       "Annet",
}

// SystemDisplayName returns the user-facing name for a system key. Unknown
// keys fall back to the key itself.
func SystemDisplayName(key string) string {
	if name, ok := systemDisplayNames[key]; ok {
		return name
	}
	return key
}

// Issue categories used by the priority/category partitioner.
const (
	IssueCategoryNervous         = "Nervesystem"
	IssueCategoryDigestive       = "Fordøyelse"
	IssueCategoryHormonal        = "Hormonbalanse"
	IssueCategoryMusculoskeletal = "Muskler og skjelett"
	IssueCategoryImmune          = "Immunforsvar"
	IssueCategoryOther           = "Annet"
)

// IssueRules maps issue/area names to issue categories. The partitioner
// applies these with FirstMatch against the name field only, so earlier
// rules take precedence for names touching several systems.
var IssueRules = []Rule{
	{Pattern: "nerve", Category: IssueCategoryNervous},
	{Pattern: "stress", Category: IssueCategoryNervous},
	{Pattern: "søvn", Category: IssueCategoryNervous},
	{Pattern: "hodepine", Category: IssueCategoryNervous},
	{Pattern: "tarm", Category: IssueCategoryDigestive},
	{Pattern: "mage", Category: IssueCategoryDigestive},
	{Pattern: "fordøyelse", Category: IssueCategoryDigestive},
	{Pattern: "lever", Category: IssueCategoryDigestive},
	{Pattern: "hormon", Category: IssueCategoryHormonal},
	{Pattern: "skjoldbrusk", Category: IssueCategoryHormonal},
	{Pattern: "binyre", Category: IssueCategoryHormonal},
	{Pattern: "muskel", Category: IssueCategoryMusculoskeletal},
	{Pattern: "ledd", Category: IssueCategoryMusculoskeletal},
	{Pattern: "rygg", Category: IssueCategoryMusculoskeletal},
	{Pattern: "nakke", Category: IssueCategoryMusculoskeletal},
	{Pattern: "immun", Category: IssueCategoryImmune},
	{Pattern: "betennelse", Category: IssueCategoryImmune},
	{Pattern: "allergi", Category: IssueCategoryImmune},
}
