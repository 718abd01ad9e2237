package headlessterm

import "testing"

type recordingDiagnostics struct {
	actions []UnspecifiedAction
}

func (r *recordingDiagnostics) Unspecified(action UnspecifiedAction) {
	r.actions = append(r.actions, action)
}

func TestNoopDiagnosticsDiscardsReports(t *testing.T) {
	var provider DiagnosticsProvider = NoopDiagnostics{}
	// Should not panic.
	provider.Unspecified(UnspecifiedAction{Control: 'x'})
}

func TestDefaultDiagnosticsProviderIsNoop(t *testing.T) {
	term := New(WithSize(5, 10))
	if term.DiagnosticsProvider() == nil {
		t.Fatal("expected a default (no-op) diagnostics provider")
	}
}

func TestSetDiagnosticsProviderAtRuntime(t *testing.T) {
	term := New(WithSize(5, 10))
	diag := &recordingDiagnostics{}

	term.SetDiagnosticsProvider(diag)

	if term.DiagnosticsProvider() != diag {
		t.Error("expected diagnostics provider to be updated")
	}
}

func TestMalformedUserVarReportsUnspecified(t *testing.T) {
	diag := &recordingDiagnostics{}
	term := New(WithDiagnostics(diag))

	// Not valid base64 after the '='.
	term.WriteString("\x1b]1337;SetUserVar=name=not-base64!!!\x07")

	if len(diag.actions) == 0 {
		t.Fatal("expected a malformed SetUserVar body to be reported as unspecified")
	}
}

func TestMalformedNotificationBase64ReportsUnspecified(t *testing.T) {
	diag := &recordingDiagnostics{}
	provider := &testNotificationProvider{}
	term := New(WithDiagnostics(diag), WithNotification(provider))

	term.WriteString("\x1b]99;i=1:p=title:e=1:d=1;not-valid-base64!!!\x1b\\")

	if len(diag.actions) == 0 {
		t.Fatal("expected a malformed base64 OSC 99 body to be reported as unspecified")
	}
	if provider.notifyCount != 0 {
		t.Errorf("expected no notification to be delivered for an undecodable payload, got %d", provider.notifyCount)
	}
}

func TestMalformedKittyGraphicsReportsUnspecified(t *testing.T) {
	diag := &recordingDiagnostics{}
	term := New(WithDiagnostics(diag))

	// The payload isn't valid base64 (or base64-without-padding), so
	// ParseKittyGraphics fails before a KittyCommand even exists.
	term.applicationCommandReceivedInternal([]byte("Ga=T,f=32,s=1,v=1;not-valid-base64!!!"))

	if len(diag.actions) == 0 {
		t.Fatal("expected a malformed Kitty graphics command to be reported as unspecified")
	}
	if diag.actions[0].Control != 'G' {
		t.Errorf("expected the report to be tagged 'G', got %q", diag.actions[0].Control)
	}
}

func TestMalformedSixelReportsUnspecified(t *testing.T) {
	diag := &recordingDiagnostics{}
	term := New(WithDiagnostics(diag))

	// An empty sixel body decodes to a 0x0 image, which sixelReceivedInternal
	// treats the same as a parse failure.
	term.sixelReceivedInternal(nil, nil)

	if len(diag.actions) == 0 {
		t.Fatal("expected an empty/malformed sixel body to be reported as unspecified")
	}
	if diag.actions[0].Control != 'q' {
		t.Errorf("expected the report to be tagged 'q', got %q", diag.actions[0].Control)
	}
}
