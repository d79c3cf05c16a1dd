package wizard

import (
	"fmt"
	"strings"

	"valentine-surprise-server/models"
)

const (
	MaxImages          = 5
	MaxImageSize       = 2 * 1024 * 1024 // 2MB
	MaxReasons         = 5
	MaxTimelineEntries = 4

	totalSteps = 4
)

// Step indices of the creation wizard.
const (
	StepBasics = iota
	StepPhotos
	StepReasons
	StepTimeline
)

// File is a locally selected file waiting to be uploaded.
type File struct {
	Name string
	Size int64
	MIME string
	Data []byte
}

// Draft holds the in-progress, unsaved state of a surprise being composed.
// It is created empty on wizard mount and discarded after a successful
// submission; partial drafts are never persisted.
type Draft struct {
	SenderName   string
	ReceiverName string
	Message      string
	Images       []File
	Reasons      []string
	Timeline     []models.TimelineEntry

	step    int
	err     string
	loading bool
}

// NewDraft returns an empty draft positioned on the first step. The timeline
// is seeded with two blank entries and the reasons list with one, matching
// the form the user first sees.
func NewDraft() *Draft {
	return &Draft{
		Reasons:  []string{""},
		Timeline: []models.TimelineEntry{{}, {}},
	}
}

func (d *Draft) Step() int     { return d.step }
func (d *Draft) Err() string   { return d.err }
func (d *Draft) Loading() bool { return d.loading }

// Advance validates the current step and moves forward when it passes.
// On failure the step is unchanged and Err carries the message.
func (d *Draft) Advance() bool {
	if msg := d.validateStep(d.step); msg != "" {
		d.err = msg
		return false
	}
	d.err = ""
	if d.step < totalSteps-1 {
		d.step++
	}
	return true
}

// Retreat moves one step back. Backward navigation is never blocked.
func (d *Draft) Retreat() {
	d.err = ""
	if d.step > 0 {
		d.step--
	}
}

// SetField updates one of the named text fields.
func (d *Draft) SetField(name, value string) {
	switch name {
	case "senderName":
		d.SenderName = value
	case "receiverName":
		d.ReceiverName = value
	case "message":
		d.Message = value
	}
}

// AddImages validates and appends a batch of selected files. The whole batch
// is rejected when it would exceed the image cap, when any file exceeds the
// size limit, or when any file is not an image; on rejection nothing is
// added and Err names the offending file or limit.
func (d *Draft) AddImages(files ...File) bool {
	if len(d.Images)+len(files) > MaxImages {
		d.err = fmt.Sprintf("You can only upload up to %d images", MaxImages)
		return false
	}
	for _, f := range files {
		if f.Size > MaxImageSize {
			d.err = fmt.Sprintf("Image %s exceeds 2MB limit", f.Name)
			return false
		}
		if !strings.HasPrefix(f.MIME, "image/") {
			d.err = fmt.Sprintf("%s is not an image file", f.Name)
			return false
		}
	}
	d.err = ""
	d.Images = append(d.Images, files...)
	return true
}

func (d *Draft) RemoveImage(index int) {
	if index < 0 || index >= len(d.Images) {
		return
	}
	d.Images = append(d.Images[:index], d.Images[index+1:]...)
}

// AddReason grows the reasons list by one blank entry, no-op at the cap.
func (d *Draft) AddReason() {
	if len(d.Reasons) >= MaxReasons {
		return
	}
	d.Reasons = append(d.Reasons, "")
}

func (d *Draft) RemoveReason(index int) {
	if index < 0 || index >= len(d.Reasons) {
		return
	}
	d.Reasons = append(d.Reasons[:index], d.Reasons[index+1:]...)
}

func (d *Draft) UpdateReason(index int, value string) {
	if index < 0 || index >= len(d.Reasons) {
		return
	}
	d.Reasons[index] = value
}

// AddTimelineEntry grows the timeline by one blank entry, no-op at the cap.
func (d *Draft) AddTimelineEntry() {
	if len(d.Timeline) >= MaxTimelineEntries {
		return
	}
	d.Timeline = append(d.Timeline, models.TimelineEntry{})
}

func (d *Draft) RemoveTimelineEntry(index int) {
	if index < 0 || index >= len(d.Timeline) {
		return
	}
	d.Timeline = append(d.Timeline[:index], d.Timeline[index+1:]...)
}

func (d *Draft) UpdateTimelineEntry(index int, field, value string) {
	if index < 0 || index >= len(d.Timeline) {
		return
	}
	switch field {
	case "date":
		d.Timeline[index].Date = value
	case "title":
		d.Timeline[index].Title = value
	case "description":
		d.Timeline[index].Description = value
	}
}

func (d *Draft) validateStep(step int) string {
	switch step {
	case StepBasics:
		if strings.TrimSpace(d.SenderName) == "" ||
			strings.TrimSpace(d.ReceiverName) == "" ||
			strings.TrimSpace(d.Message) == "" {
			return "Please fill in all fields"
		}
	case StepPhotos:
		if len(d.Images) == 0 {
			return "Please upload at least one image"
		}
	case StepReasons:
		if len(d.trimmedReasons()) == 0 {
			return "Please add at least one reason"
		}
	case StepTimeline:
		// Submission step, nothing extra to validate here.
	}
	return ""
}

// trimmedReasons returns the non-blank reasons in order.
func (d *Draft) trimmedReasons() []string {
	out := []string{}
	for _, r := range d.Reasons {
		if s := strings.TrimSpace(r); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// filledTimeline returns timeline entries with at least one non-blank field.
func (d *Draft) filledTimeline() []models.TimelineEntry {
	out := []models.TimelineEntry{}
	for _, e := range d.Timeline {
		if strings.TrimSpace(e.Date) != "" ||
			strings.TrimSpace(e.Title) != "" ||
			strings.TrimSpace(e.Description) != "" {
			out = append(out, e)
		}
	}
	return out
}
