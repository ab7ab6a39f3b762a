package contact

import (
	"context"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/iburimskiy/particle-network/internal/webhook"
)

// State of the form's single submission.
type State int

const (
	Idle State = iota
	Submitting
	Success
	Error
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	case Error:
		return "error"
	}
	return "unknown"
}

// Field identifies one of the three inputs.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldProblem
	fieldCount
)

func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldEmail:
		return "Email"
	case FieldProblem:
		return "Project details"
	}
	return ""
}

const (
	SubmitLabel = "SEND MESSAGE"
	BusyLabel   = "ANALYZING..."

	SuccessText = "Message sent! I'll get back to you soon."
	ErrorText   = "Something went wrong. Please try again."
)

// Sender delivers a submission. *webhook.Client satisfies it.
type Sender interface {
	Send(ctx context.Context, sub webhook.Submission) error
}

// Button is the submit control's visible state.
type Button struct {
	Label   string
	Enabled bool
	Opacity float64
}

// Message is a success or error banner that hides itself after a delay.
type Message struct {
	Text    string
	Visible bool
	hideAt  time.Time
}

func (m *Message) show(now time.Time, d time.Duration) {
	m.Visible = true
	m.hideAt = now.Add(d)
}

func (m *Message) hide() {
	m.Visible = false
	m.hideAt = time.Time{}
}

// Form is the contact form controller. Everything except the network
// call runs on the caller's goroutine; results come back through Poll.
type Form struct {
	Button  Button
	Success Message
	Error   Message

	SuccessDuration time.Duration
	ErrorDuration   time.Duration

	// OnResult, if set, is called from Poll with Success or Error.
	OnResult func(State)

	sender  Sender
	values  [fieldCount]string
	focus   Field
	state   State
	last    State
	results chan error
}

func NewForm(sender Sender, successFor, errorFor time.Duration) *Form {
	return &Form{
		Button:          Button{Label: SubmitLabel, Enabled: true, Opacity: 1},
		Success:         Message{Text: SuccessText},
		Error:           Message{Text: ErrorText},
		SuccessDuration: successFor,
		ErrorDuration:   errorFor,
		sender:          sender,
		last:            Idle,
		results:         make(chan error, 1),
	}
}

// State reports the current state. After a result is applied the form is
// Idle again; LastResult tells which branch ran.
func (f *Form) State() State { return f.state }

// LastResult is Success or Error for the most recent finished submission,
// Idle if none has finished yet.
func (f *Form) LastResult() State { return f.last }

func (f *Form) Value(field Field) string { return f.values[field] }

func (f *Form) SetField(field Field, value string) {
	if field < 0 || field >= fieldCount {
		return
	}
	f.values[field] = value
}

func (f *Form) Focused() Field { return f.focus }

func (f *Form) Focus(field Field) {
	if field < 0 || field >= fieldCount {
		return
	}
	f.focus = field
}

func (f *Form) FocusNext() { f.focus = (f.focus + 1) % fieldCount }

func (f *Form) FocusPrev() { f.focus = (f.focus + fieldCount - 1) % fieldCount }

// Type appends runes to the focused field. Only the problem field keeps
// newlines.
func (f *Form) Type(runes []rune) {
	var b strings.Builder
	for _, r := range runes {
		if r == '\n' && f.focus != FieldProblem {
			continue
		}
		if r < ' ' && r != '\n' {
			continue
		}
		b.WriteRune(r)
	}
	f.values[f.focus] += b.String()
}

// Backspace removes the last rune of the focused field.
func (f *Form) Backspace() {
	v := f.values[f.focus]
	if v == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(v)
	f.values[f.focus] = v[:len(v)-size]
}

// Submit sends the current values once. It returns false while a
// submission is already in flight.
func (f *Form) Submit(ctx context.Context) bool {
	if !f.Button.Enabled {
		return false
	}

	f.Success.hide()
	f.Error.hide()

	f.Button.Label = BusyLabel
	f.Button.Opacity = 0.7
	f.Button.Enabled = false
	f.state = Submitting

	sub := webhook.Submission{
		Name:    f.values[FieldName],
		Email:   f.values[FieldEmail],
		Problem: f.values[FieldProblem],
	}
	go func() {
		f.results <- f.sender.Send(ctx, sub)
	}()
	return true
}

// Poll applies a finished submission, if any, and hides banners whose
// delay has run out.
func (f *Form) Poll(now time.Time) {
	select {
	case err := <-f.results:
		f.finish(now, err)
	default:
	}

	if f.Success.Visible && !now.Before(f.Success.hideAt) {
		f.Success.hide()
	}
	if f.Error.Visible && !now.Before(f.Error.hideAt) {
		f.Error.hide()
	}
}

func (f *Form) finish(now time.Time, err error) {
	if err == nil {
		f.state = Success
		f.values = [fieldCount]string{}
		f.focus = FieldName
		f.Success.show(now, f.SuccessDuration)
	} else {
		f.state = Error
		log.Printf("contact form: %v", err)
		f.Error.show(now, f.ErrorDuration)
	}
	f.last = f.state

	// Both branches end here.
	f.Button.Label = SubmitLabel
	f.Button.Opacity = 1
	f.Button.Enabled = true
	f.state = Idle

	if f.OnResult != nil {
		f.OnResult(f.last)
	}
}
