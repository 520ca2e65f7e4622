package ui

import (
	"strings"
	"testing"

	"category-admin/internal/api"
	"category-admin/internal/identity"
	"category-admin/internal/theme"
	tea "github.com/charmbracelet/bubbletea"
)

func TestViewShowsLoadingBeforeBootstrap(t *testing.T) {
	model := newTestModel(newFakeService())
	if got := model.View(); !strings.Contains(got, "Yuklanmoqda") {
		t.Fatalf("expected loading view, got:\n%s", got)
	}
}

func TestViewDeniedShowsReason(t *testing.T) {
	service := newFakeService()
	service.user.Status = api.UserRejected
	model := newTestModel(service)
	harness := NewHarness(model)
	harness.Run(model.Init())

	got := harness.View()
	if !strings.Contains(got, "Kirish taqiqlangan") {
		t.Fatalf("expected denial heading, got:\n%s", got)
	}
	if !strings.Contains(got, string(api.UserRejected)) {
		t.Fatalf("expected the status in the denial message, got:\n%s", got)
	}
}

func TestViewListShowsRowsAndIndicator(t *testing.T) {
	harness := bootstrappedHarness(t, newFakeService())

	got := harness.View()
	for _, name := range []string{"Mevalar", "Sabzavotlar", "Ichimliklar"} {
		if !strings.Contains(got, name) {
			t.Fatalf("expected %q in list view, got:\n%s", name, got)
		}
	}
	if !strings.Contains(got, "▌") {
		t.Fatalf("expected cursor indicator in list view")
	}
	if !strings.Contains(got, "7882316826") {
		t.Fatalf("expected chat id badge in header")
	}
}

func TestViewEmptyStates(t *testing.T) {
	service := newFakeService()
	service.categories = nil
	harness := bootstrappedHarness(t, service)

	if got := harness.View(); !strings.Contains(got, "Kategoriyalar yo'q") {
		t.Fatalf("expected empty-collection message, got:\n%s", got)
	}

	service = newFakeService()
	harness = bootstrappedHarness(t, service)
	harness.Send(keyRunes("zzz"))
	if got := harness.View(); !strings.Contains(got, "Hech narsa topilmadi") {
		t.Fatalf("expected no-match message, got:\n%s", got)
	}
}

func TestViewFooterHints(t *testing.T) {
	service := newFakeService()
	loc := identity.Resolve("/chatId=7882316826", "7882316826")
	model := NewModel(service, loc, "7882316826", 100, 30, true, false, nil, theme.ForVariant(theme.Dark))
	harness := NewHarness(model)
	harness.Run(model.Init())

	if got := harness.View(); !strings.Contains(got, "ctrl+n new") {
		t.Fatalf("expected footer hints, got:\n%s", got)
	}
}

func TestViewFormShowsLabels(t *testing.T) {
	harness := bootstrappedHarness(t, newFakeService())
	harness.Send(tea.KeyMsg{Type: tea.KeyCtrlN})

	got := harness.View()
	if !strings.Contains(got, "Yangi kategoriya") {
		t.Fatalf("expected create form title, got:\n%s", got)
	}
	for _, label := range []string{"Nomi (o'zbekcha)", "Tartib raqami"} {
		if !strings.Contains(got, label) {
			t.Fatalf("expected field label %q, got:\n%s", label, got)
		}
	}
}

func TestViewConfirmShowsQuestionAndName(t *testing.T) {
	harness := bootstrappedHarness(t, newFakeService())
	harness.Send(tea.KeyMsg{Type: tea.KeyCtrlD})

	got := harness.View()
	if !strings.Contains(got, confirmQuestion) {
		t.Fatalf("expected confirmation question, got:\n%s", got)
	}
	if !strings.Contains(got, "Sabzavotlar") {
		t.Fatalf("expected target name in prompt, got:\n%s", got)
	}
}

func TestViewBusyOverlay(t *testing.T) {
	harness := bootstrappedHarness(t, newFakeService())
	harness.Model().busy = true

	if got := harness.View(); !strings.Contains(got, "So'rov bajarilmoqda") {
		t.Fatalf("expected busy overlay, got:\n%s", got)
	}
}

func TestViewHeightLimit(t *testing.T) {
	service := newFakeService()
	loc := identity.Resolve("/chatId=1", "1")
	model := NewModel(service, loc, "1", 60, 6, false, false, nil, theme.ForVariant(theme.Light))
	harness := NewHarness(model)
	harness.Run(model.Init())

	lines := strings.Split(harness.View(), "\n")
	if len(lines) > 6 {
		t.Fatalf("expected at most 6 lines, got %d", len(lines))
	}
}
