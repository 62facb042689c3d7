package entities

// Strategy identifies how a locator finds its control on the page.
type Strategy string

const (
	StrategyCSS         Strategy = "css"
	StrategyLinkText    Strategy = "link_text"
	StrategyButtonLabel Strategy = "button_label"
)

// Locator describes how to find one control. Locators carry no driver
// state; drivers resolve them into control handles on every call.
type Locator struct {
	Strategy Strategy
	Value    string
	Kind     ControlKind
}

// ByCSS - locates a control by CSS selector
func ByCSS(selector string) Locator {
	return Locator{Strategy: StrategyCSS, Value: selector, Kind: KindGeneric}
}

// ByLinkText - locates a link by its visible text
func ByLinkText(text string) Locator {
	return Locator{Strategy: StrategyLinkText, Value: text, Kind: KindGeneric}
}

// ByButtonLabel - locates a button by its label or value
func ByButtonLabel(label string) Locator {
	return Locator{Strategy: StrategyButtonLabel, Value: label, Kind: KindGeneric}
}

// TextField - locates a freeform text input by CSS selector
func TextField(selector string) Locator {
	return Locator{Strategy: StrategyCSS, Value: selector, Kind: KindTextEntry}
}

// SelectList - locates a single-choice list by CSS selector
func SelectList(selector string) Locator {
	return Locator{Strategy: StrategyCSS, Value: selector, Kind: KindChoiceList}
}
