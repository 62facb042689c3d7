package page

import (
	"context"
	"fmt"

	"pagebind/domain/entities"
	"pagebind/domain/interfaces"
)

// Fit applies one generic edit to an editable control. A nil value is the
// "leave unchanged" sentinel and is a no-op for every kind. Freeform text
// controls are cleared and then receive the value as keystrokes, so any
// per-character change handlers fire; single-choice lists select the
// option whose visible text satisfies the value.
func Fit(ctx context.Context, drv interfaces.Driver, control interfaces.Control, value *entities.TextMatch) error {
	if value == nil {
		return nil
	}
	switch control.Kind() {
	case entities.KindTextEntry:
		if err := drv.Clear(ctx, control); err != nil {
			return err
		}
		return drv.EnterText(ctx, control, value.Text())
	case entities.KindChoiceList:
		return drv.SelectOption(ctx, control, value)
	default:
		return fmt.Errorf("control kind %q is not editable", control.Kind())
	}
}
