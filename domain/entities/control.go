package entities

// ControlKind tags a resolved control with the capability contract it
// supports. Only text entries and choice lists participate in the generic
// fit protocol; everything else is generic.
type ControlKind string

const (
	KindGeneric    ControlKind = "generic"
	KindTextEntry  ControlKind = "text_entry"
	KindChoiceList ControlKind = "choice_list"
)
