package deck

// SlideKind selects the layout used for a slide.
type SlideKind string

const (
	KindTitle      SlideKind = "title"
	KindContent    SlideKind = "content"
	KindDiscussion SlideKind = "discussion"
	KindQuiz       SlideKind = "quiz"
	KindAgreement  SlideKind = "agreement"
)

// CalloutKind selects the accent color of a callout box.
type CalloutKind string

const (
	CalloutRealTalk CalloutKind = "realtalk"
	CalloutWarn     CalloutKind = "warn"
	CalloutTip      CalloutKind = "tip"
)

// Bullet is one list item on a content slide.
type Bullet struct {
	Icon string `yaml:"icon" json:"icon,omitempty"`
	Text string `yaml:"text" json:"text"`
}

// Callout is a labeled highlight box under the slide body.
type Callout struct {
	Kind  CalloutKind `yaml:"kind" json:"kind"`
	Label string      `yaml:"label" json:"label"`
	Text  string      `yaml:"text" json:"text"`
}

// QuizItem is a question whose answer stays hidden until revealed.
// The explanation is shown together with the correct option once the
// item has been revealed; it never hides again within a session.
type QuizItem struct {
	ID          string   `yaml:"id" json:"id"`
	Question    string   `yaml:"question" json:"question"`
	Options     []string `yaml:"options" json:"options"`
	Correct     int      `yaml:"correct" json:"correct"`
	Explanation string   `yaml:"explanation" json:"explanation,omitempty"`
}

// Slide is one unit of the deck's fixed ordered sequence. Only the
// fields matching its kind are set; the rest stay zero.
type Slide struct {
	Kind   SlideKind `yaml:"kind" json:"kind"`
	Module string    `yaml:"module" json:"module,omitempty"`
	Icon   string    `yaml:"icon" json:"icon,omitempty"`
	Title  string    `yaml:"title" json:"title"`

	Body     []string  `yaml:"body" json:"body,omitempty"`
	Bullets  []Bullet  `yaml:"bullets" json:"bullets,omitempty"`
	Callouts []Callout `yaml:"callouts" json:"callouts,omitempty"`
	Note     string    `yaml:"note" json:"note,omitempty"`

	Prompt string `yaml:"prompt" json:"prompt,omitempty"`

	Items []QuizItem `yaml:"items" json:"items,omitempty"`

	Checklist []string `yaml:"checklist" json:"checklist,omitempty"`
}

// ModuleRef points at the slide where a module begins.
type ModuleRef struct {
	Title string
	Slide int
}

// Deck is the immutable presentation: built once by Parse, never
// mutated afterward. Slide positions are 0-based.
type Deck struct {
	Title    string  `yaml:"title" json:"title"`
	Subtitle string  `yaml:"subtitle" json:"subtitle,omitempty"`
	Slides   []Slide `yaml:"slides" json:"slides"`

	itemIndex map[string]itemRef
}

type itemRef struct {
	slide int
	item  int
}

// SlideCount returns the number of slides. Parse rejects empty decks,
// so the count is at least 1 for any Deck it returns.
func (d *Deck) SlideCount() int {
	return len(d.Slides)
}

// Slide returns the slide at position n and whether n is in range.
func (d *Deck) Slide(n int) (*Slide, bool) {
	if n < 0 || n >= len(d.Slides) {
		return nil, false
	}
	return &d.Slides[n], true
}

// Item resolves a quiz item ID to its item and owning slide index.
func (d *Deck) Item(id string) (*QuizItem, int, bool) {
	ref, ok := d.itemIndex[id]
	if !ok {
		return nil, 0, false
	}
	return &d.Slides[ref.slide].Items[ref.item], ref.slide, true
}

// QuizItemCount returns the total number of quiz items in the deck.
func (d *Deck) QuizItemCount() int {
	return len(d.itemIndex)
}

// Modules lists the module title slides in deck order. Decks without
// title slides yield a single entry for slide 0 so pickers always
// have something to jump to.
func (d *Deck) Modules() []ModuleRef {
	var refs []ModuleRef
	for i := range d.Slides {
		s := &d.Slides[i]
		if s.Kind != KindTitle {
			continue
		}
		title := s.Module
		if title == "" {
			title = s.Title
		}
		refs = append(refs, ModuleRef{Title: title, Slide: i})
	}
	if len(refs) == 0 {
		refs = append(refs, ModuleRef{Title: d.Title, Slide: 0})
	}
	return refs
}
