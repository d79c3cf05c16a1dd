package wizard

import (
	"strings"
	"testing"
)

func imageFile(name string, size int64) File {
	return File{Name: name, Size: size, MIME: "image/jpeg"}
}

func TestAdvanceBasicsStep(t *testing.T) {
	cases := []struct {
		name     string
		sender   string
		receiver string
		message  string
		ok       bool
	}{
		{"all filled", "Arjun", "Priya", "Hi", true},
		{"all empty", "", "", "", false},
		{"missing sender", "", "Priya", "Hi", false},
		{"missing receiver", "Arjun", "", "Hi", false},
		{"missing message", "Arjun", "Priya", "", false},
		{"whitespace only", "  ", "\t", " ", false},
		{"padded values", " Arjun ", " Priya ", " Hi ", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDraft()
			d.SenderName = tc.sender
			d.ReceiverName = tc.receiver
			d.Message = tc.message

			got := d.Advance()
			if got != tc.ok {
				t.Fatalf("Advance() = %v, want %v", got, tc.ok)
			}
			if tc.ok {
				if d.Step() != StepPhotos {
					t.Fatalf("step = %d, want %d", d.Step(), StepPhotos)
				}
				if d.Err() != "" {
					t.Fatalf("unexpected error %q", d.Err())
				}
			} else {
				if d.Step() != StepBasics {
					t.Fatalf("step moved to %d on failed validation", d.Step())
				}
				if d.Err() != "Please fill in all fields" {
					t.Fatalf("error = %q", d.Err())
				}
			}
		})
	}
}

func TestAdvancePhotosStep(t *testing.T) {
	d := draftAtStep(t, StepPhotos)

	if d.Advance() {
		t.Fatal("advanced past photos step with no images")
	}
	if d.Err() != "Please upload at least one image" {
		t.Fatalf("error = %q", d.Err())
	}
	if d.Step() != StepPhotos {
		t.Fatalf("step = %d, want %d", d.Step(), StepPhotos)
	}

	if !d.AddImages(imageFile("a.jpg", 1024)) {
		t.Fatalf("AddImages failed: %s", d.Err())
	}
	if !d.Advance() {
		t.Fatalf("Advance failed with one image: %s", d.Err())
	}
	if d.Step() != StepReasons {
		t.Fatalf("step = %d, want %d", d.Step(), StepReasons)
	}
}

func TestAdvanceReasonsStep(t *testing.T) {
	d := draftAtStep(t, StepReasons)

	// The seeded reason is blank and must not count.
	if d.Advance() {
		t.Fatal("advanced past reasons step with only blank reasons")
	}
	if d.Err() != "Please add at least one reason" {
		t.Fatalf("error = %q", d.Err())
	}

	d.UpdateReason(0, "   ")
	if d.Advance() {
		t.Fatal("whitespace-only reason counted as valid")
	}

	d.UpdateReason(0, "kind")
	if !d.Advance() {
		t.Fatalf("Advance failed with one reason: %s", d.Err())
	}
	if d.Step() != StepTimeline {
		t.Fatalf("step = %d, want %d", d.Step(), StepTimeline)
	}
}

func TestAdvanceCapsAtLastStep(t *testing.T) {
	d := draftAtStep(t, StepTimeline)
	if !d.Advance() {
		t.Fatalf("Advance on final step failed: %s", d.Err())
	}
	if d.Step() != StepTimeline {
		t.Fatalf("step = %d, advanced past the last step", d.Step())
	}
}

func TestRetreat(t *testing.T) {
	d := draftAtStep(t, StepReasons)
	d.err = "some error"

	d.Retreat()
	if d.Step() != StepPhotos {
		t.Fatalf("step = %d, want %d", d.Step(), StepPhotos)
	}
	if d.Err() != "" {
		t.Fatalf("Retreat kept error %q", d.Err())
	}

	d.Retreat()
	d.Retreat() // no-op at step 0
	if d.Step() != StepBasics {
		t.Fatalf("step = %d, want %d", d.Step(), StepBasics)
	}
}

func TestAddImagesCapIsIdempotent(t *testing.T) {
	d := NewDraft()
	for i := 0; i < MaxImages; i++ {
		if !d.AddImages(imageFile("a.jpg", 100)) {
			t.Fatalf("AddImages #%d failed: %s", i, d.Err())
		}
	}

	if d.AddImages(imageFile("extra.jpg", 100)) {
		t.Fatal("added image past the cap")
	}
	if len(d.Images) != MaxImages {
		t.Fatalf("len(Images) = %d, want %d", len(d.Images), MaxImages)
	}
	if !strings.Contains(d.Err(), "up to 5 images") {
		t.Fatalf("error = %q", d.Err())
	}
}

func TestAddImagesRejectsBatchAtomically(t *testing.T) {
	t.Run("oversized file", func(t *testing.T) {
		d := NewDraft()
		ok := d.AddImages(
			imageFile("ok1.jpg", 1024),
			imageFile("huge.jpg", MaxImageSize+1),
			imageFile("ok2.jpg", 1024),
		)
		if ok {
			t.Fatal("batch with oversized file accepted")
		}
		if len(d.Images) != 0 {
			t.Fatalf("len(Images) = %d, want 0 (atomic rejection)", len(d.Images))
		}
		if d.Err() != "Image huge.jpg exceeds 2MB limit" {
			t.Fatalf("error = %q", d.Err())
		}
	})

	t.Run("non-image file", func(t *testing.T) {
		d := NewDraft()
		ok := d.AddImages(
			imageFile("ok.jpg", 1024),
			File{Name: "notes.pdf", Size: 1024, MIME: "application/pdf"},
		)
		if ok {
			t.Fatal("batch with non-image file accepted")
		}
		if len(d.Images) != 0 {
			t.Fatalf("len(Images) = %d, want 0 (atomic rejection)", len(d.Images))
		}
		if d.Err() != "notes.pdf is not an image file" {
			t.Fatalf("error = %q", d.Err())
		}
	})

	t.Run("batch exceeding cap", func(t *testing.T) {
		d := NewDraft()
		d.AddImages(imageFile("a.jpg", 100), imageFile("b.jpg", 100), imageFile("c.jpg", 100))
		if d.AddImages(imageFile("d.jpg", 100), imageFile("e.jpg", 100), imageFile("f.jpg", 100)) {
			t.Fatal("batch pushing past the cap accepted")
		}
		if len(d.Images) != 3 {
			t.Fatalf("len(Images) = %d, want 3", len(d.Images))
		}
	})
}

func TestAddImagesClearsPreviousError(t *testing.T) {
	d := NewDraft()
	d.AddImages(File{Name: "x.txt", Size: 10, MIME: "text/plain"})
	if d.Err() == "" {
		t.Fatal("expected an error for the rejected file")
	}
	if !d.AddImages(imageFile("good.jpg", 10)) {
		t.Fatalf("valid batch rejected: %s", d.Err())
	}
	if d.Err() != "" {
		t.Fatalf("error not cleared: %q", d.Err())
	}
}

func TestRemoveImage(t *testing.T) {
	d := NewDraft()
	d.AddImages(imageFile("a.jpg", 1), imageFile("b.jpg", 1), imageFile("c.jpg", 1))

	d.RemoveImage(1)
	if len(d.Images) != 2 || d.Images[0].Name != "a.jpg" || d.Images[1].Name != "c.jpg" {
		t.Fatalf("unexpected images after remove: %+v", d.Images)
	}

	d.RemoveImage(-1)
	d.RemoveImage(5)
	if len(d.Images) != 2 {
		t.Fatalf("out-of-range remove mutated the list: %+v", d.Images)
	}
}

func TestReasonListCap(t *testing.T) {
	d := NewDraft()
	for i := 0; i < MaxReasons+3; i++ {
		d.AddReason()
	}
	if len(d.Reasons) != MaxReasons {
		t.Fatalf("len(Reasons) = %d, want %d", len(d.Reasons), MaxReasons)
	}

	d.RemoveReason(0)
	if len(d.Reasons) != MaxReasons-1 {
		t.Fatalf("len(Reasons) = %d after remove", len(d.Reasons))
	}

	d.UpdateReason(99, "ignored") // out of range, no-op
}

func TestTimelineListCap(t *testing.T) {
	d := NewDraft()
	if len(d.Timeline) != 2 {
		t.Fatalf("new draft seeds %d timeline entries, want 2", len(d.Timeline))
	}

	for i := 0; i < MaxTimelineEntries+2; i++ {
		d.AddTimelineEntry()
	}
	if len(d.Timeline) != MaxTimelineEntries {
		t.Fatalf("len(Timeline) = %d, want %d", len(d.Timeline), MaxTimelineEntries)
	}

	d.UpdateTimelineEntry(0, "date", "2022")
	d.UpdateTimelineEntry(0, "title", "Met")
	d.UpdateTimelineEntry(0, "description", "x")
	if e := d.Timeline[0]; e.Date != "2022" || e.Title != "Met" || e.Description != "x" {
		t.Fatalf("timeline entry not updated: %+v", e)
	}

	d.RemoveTimelineEntry(3)
	if len(d.Timeline) != MaxTimelineEntries-1 {
		t.Fatalf("len(Timeline) = %d after remove", len(d.Timeline))
	}
}

func TestSetField(t *testing.T) {
	d := NewDraft()
	d.SetField("senderName", "Arjun")
	d.SetField("receiverName", "Priya")
	d.SetField("message", "Hi")
	d.SetField("unknown", "ignored")

	if d.SenderName != "Arjun" || d.ReceiverName != "Priya" || d.Message != "Hi" {
		t.Fatalf("fields not set: %+v", d)
	}
}

// draftAtStep walks a fresh draft forward to the given step with just enough
// valid data for each gate.
func draftAtStep(t *testing.T, step int) *Draft {
	t.Helper()
	d := NewDraft()
	if step == StepBasics {
		return d
	}

	d.SenderName = "Arjun"
	d.ReceiverName = "Priya"
	d.Message = "Hi"
	if !d.Advance() {
		t.Fatalf("advance from basics failed: %s", d.Err())
	}
	if step == StepPhotos {
		return d
	}

	d.AddImages(imageFile("a.jpg", 1024))
	if !d.Advance() {
		t.Fatalf("advance from photos failed: %s", d.Err())
	}
	if step == StepReasons {
		return d
	}

	d.UpdateReason(0, "kind")
	if !d.Advance() {
		t.Fatalf("advance from reasons failed: %s", d.Err())
	}
	return d
}
