package page_test

import (
	"context"
	"testing"

	"pagebind/application/page"
	"pagebind/domain/entities"
	"pagebind/domain/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cssElement(selector string) page.ElementFn {
	return func(ctx context.Context, drv interfaces.Driver) (interfaces.Control, error) {
		return drv.ResolveControl(ctx, entities.ByCSS(selector))
	}
}

func TestDeclareElementDuplicate(t *testing.T) {
	def := page.New("login")
	require.NoError(t, def.DeclareElement("title", cssElement("#title")))

	err := def.DeclareElement("title", cssElement("#other"))

	var dup *page.DuplicateDefinitionError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "login", dup.Page)
	assert.Equal(t, "title", dup.Name)
}

func TestDeclareValueSharesAccessorNamespace(t *testing.T) {
	def := page.New("cart")
	require.NoError(t, def.DeclareValue("total", cssElement("#total")))

	err := def.DeclareElement("total", cssElement("#total"))

	var dup *page.DuplicateDefinitionError
	assert.ErrorAs(t, err, &dup)
}

func TestDeclareActionOverwritesSilently(t *testing.T) {
	def := page.New("login")
	def.DeclareAction("submit", func(ctx context.Context, inst *page.Instance, args ...any) (any, error) {
		return "first", nil
	})
	def.DeclareAction("submit", func(ctx context.Context, inst *page.Instance, args ...any) (any, error) {
		return "second", nil
	})

	inst, err := def.Construct(context.Background(), &fakeDriver{}, false)
	require.NoError(t, err)

	result, err := inst.Do(context.Background(), "submit")
	require.NoError(t, err)
	assert.Equal(t, "second", result)
}

func TestActionMayShadowAccessorName(t *testing.T) {
	def := page.New("login")
	require.NoError(t, def.DeclareElement("submit", cssElement("#submit")))
	def.DeclareAction("submit", func(ctx context.Context, inst *page.Instance, args ...any) (any, error) {
		return "action won", nil
	})

	inst, err := def.Construct(context.Background(), &fakeDriver{}, false)
	require.NoError(t, err)

	result, err := inst.Call(context.Background(), "submit")
	require.NoError(t, err)
	assert.Equal(t, "action won", result, "Call tries action bindings before accessors")
}

func TestDeclareLink(t *testing.T) {
	def := page.New("home")
	require.NoError(t, def.DeclareLink("Sign In"))

	drv := &fakeDriver{}
	inst, err := def.Construct(context.Background(), drv, false)
	require.NoError(t, err)

	ctx := context.Background()
	control, err := inst.Element(ctx, "sign_in_link")
	require.NoError(t, err)
	assert.Equal(t, entities.ByLinkText("Sign In"), control.(*fakeControl).locator)

	_, err = inst.Do(ctx, "sign_in")
	require.NoError(t, err)
	require.Len(t, drv.clickCalls, 1)
	assert.Equal(t, entities.ByLinkText("Sign In"), drv.clickCalls[0],
		"the action resolves the same locator as the accessor")
}

func TestDeclareLinkDuplicate(t *testing.T) {
	def := page.New("home")
	require.NoError(t, def.DeclareLink("Sign In"))

	err := def.DeclareLink("Sign-In")

	var dup *page.DuplicateDefinitionError
	require.ErrorAs(t, err, &dup, "normalized names collide")
	assert.Equal(t, "sign_in_link", dup.Name)
}

func TestDeclareButton(t *testing.T) {
	def := page.New("editor")
	require.NoError(t, def.DeclareButton("Save"))

	drv := &fakeDriver{}
	inst, err := def.Construct(context.Background(), drv, false)
	require.NoError(t, err)

	ctx := context.Background()
	control, err := inst.Element(ctx, "save_button")
	require.NoError(t, err)
	assert.Equal(t, entities.ByButtonLabel("Save"), control.(*fakeControl).locator)

	_, err = inst.Do(ctx, "save")
	require.NoError(t, err)
	require.Len(t, drv.clickCalls, 1)
}

func TestDeclareExpectedElementDefaultTimeout(t *testing.T) {
	def := page.New("login")
	require.NoError(t, def.DeclareTextField("username", "#username"))
	def.DeclareExpectedElement("username", 0)

	drv := &fakeDriver{}
	_, err := def.Construct(context.Background(), drv, false)
	require.NoError(t, err)

	require.Len(t, drv.waitCalls, 1)
	assert.Equal(t, page.DefaultPresenceTimeout, drv.waitCalls[0].timeout)
}
