package wizard

import "testing"

func TestFieldForStep(t *testing.T) {
	wantFields := map[int]string{
		0: FieldName,
		1: FieldLocation,
		2: FieldCategory,
		3: FieldPhone,
		4: FieldEmail,
		5: FieldPassword,
	}

	for step, want := range wantFields {
		field, ok := FieldForStep(step)
		if !ok || field != want {
			t.Errorf("FieldForStep(%d) = %q, %v, want %q, true", step, field, ok, want)
		}
	}

	if _, ok := FieldForStep(ConfirmationStep); ok {
		t.Error("confirmation step should not map to a field")
	}
	if _, ok := FieldForStep(StepCount); ok {
		t.Error("step beyond the sequence should not map to a field")
	}
}

func TestSupportedLanguage(t *testing.T) {
	for _, language := range []string{"en-US", "en-IN", "hi-IN", "mr-IN", "es-ES", "fr-FR"} {
		if !SupportedLanguage(language) {
			t.Errorf("expected %s to be supported", language)
		}
	}
	if SupportedLanguage("de-DE") {
		t.Error("expected de-DE to be unsupported")
	}
}

func TestQuestionForStep(t *testing.T) {
	for _, language := range []string{"en-US", "en-IN", "hi-IN", "mr-IN", "es-ES", "fr-FR"} {
		for step := 0; step < StepCount; step++ {
			question, ok := QuestionForStep(language, step)
			if !ok || question == "" {
				t.Errorf("QuestionForStep(%s, %d) returned no question", language, step)
			}
		}
	}

	fallback, ok := QuestionForStep("de-DE", 0)
	if !ok {
		t.Fatal("fallback question missing")
	}
	want, _ := QuestionForStep(DefaultLanguage, 0)
	if fallback != want {
		t.Errorf("fallback question = %q, want %q", fallback, want)
	}

	if _, ok := QuestionForStep("en-IN", StepCount); ok {
		t.Error("expected no question past the last step")
	}
}

func TestClosingMessage(t *testing.T) {
	if msg := ClosingMessage("hi-IN"); msg == "" {
		t.Error("expected a closing message for hi-IN")
	}
	if ClosingMessage("de-DE") != ClosingMessage(DefaultLanguage) {
		t.Error("expected unsupported language to fall back to the default closing message")
	}
}
