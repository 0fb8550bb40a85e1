package masm

type EntryKind int

const (
	KindInstruction EntryKind = iota
	KindRegister
	KindDirective
	KindOperator
	KindType
)

type Entry struct {
	Name          string
	Detail        string
	Documentation string
	Kind          EntryKind
}

type TextPosition struct {
	Line int `json:"line"`
	Char int `json:"character"` // UTF-16 code units, as in the protocol
}

type TextRange struct {
	Start TextPosition `json:"start"`
	End   TextPosition `json:"end"`
}

type Location struct {
	URI   string    `json:"uri"`
	Range TextRange `json:"range"`
}

type DiagnosticSeverity int

const (
	Error       DiagnosticSeverity = 1
	Warning     DiagnosticSeverity = 2
	Information DiagnosticSeverity = 3
	Hint        DiagnosticSeverity = 4
)

type DiagnosticRelatedInformation struct {
	Location Location `json:"location"`
	Message  string   `json:"message"`
}

type Diagnostic struct {
	Range              TextRange                      `json:"range"`
	Message            string                         `json:"message"`
	Source             string                         `json:"source"`
	Severity           DiagnosticSeverity             `json:"severity,omitempty"`
	RelatedInformation []DiagnosticRelatedInformation `json:"relatedInformation"`
}
