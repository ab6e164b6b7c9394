package cases

// ConfigVersion is the expected version string of the case file.
const ConfigVersion = "1.0"

// ExpectedChanceTotal is what the chances of one case should add up to.
const ExpectedChanceTotal = 100.0

// ChanceTolerance absorbs float noise when comparing the chance sum.
const ChanceTolerance = 1e-6

const (
	ErrContextFailedToReadCases  = "failed to read cases"
	ErrContextFailedToParseCases = "failed to parse cases"
	ErrMsgDuplicateCaseID        = "duplicate case id"
)

const (
	LogMsgCasesLoaded     = "Cases loaded"
	LogMsgChanceSumOff    = "Case chances do not sum to 100, fallback policy applies"
	LogMsgCaseHasNoItems  = "Case has no items and cannot be opened"
	LogMsgCasesVersionOff = "Unexpected cases version"
)
