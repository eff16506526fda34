package deck

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed course.yaml
var courseYAML []byte

// Load reads and parses a deck file.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck file: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return d, nil
}

// Default returns the deck embedded in the binary.
func Default() (*Deck, error) {
	return Parse(courseYAML)
}

// Parse unmarshals YAML deck data, fills defaults, validates, and
// builds the quiz item index. The returned deck is ready for playback
// and is not mutated afterward.
func Parse(data []byte) (*Deck, error) {
	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("invalid deck yaml: %w", err)
	}

	if d.Title == "" {
		d.Title = "Untitled Deck"
	}
	for i := range d.Slides {
		s := &d.Slides[i]
		if s.Kind == "" {
			s.Kind = KindContent
		}
		for j := range s.Items {
			if s.Items[j].ID == "" {
				s.Items[j].ID = fmt.Sprintf("s%d-q%d", i, j)
			}
		}
		for j := range s.Callouts {
			if s.Callouts[j].Kind == "" {
				s.Callouts[j].Kind = CalloutTip
			}
		}
	}

	if err := d.validate(); err != nil {
		return nil, err
	}

	d.itemIndex = make(map[string]itemRef)
	for i := range d.Slides {
		for j := range d.Slides[i].Items {
			d.itemIndex[d.Slides[i].Items[j].ID] = itemRef{slide: i, item: j}
		}
	}

	return &d, nil
}

// validate rejects decks the player cannot present. Navigation is
// total once a deck has loaded, so everything that could go wrong is
// checked here instead.
func (d *Deck) validate() error {
	if len(d.Slides) == 0 {
		return fmt.Errorf("deck %q has no slides", d.Title)
	}

	seen := make(map[string]bool)
	for i := range d.Slides {
		s := &d.Slides[i]
		switch s.Kind {
		case KindTitle, KindContent, KindDiscussion, KindQuiz, KindAgreement:
		default:
			return fmt.Errorf("slide %d: unknown kind %q", i, s.Kind)
		}

		if s.Kind == KindQuiz && len(s.Items) == 0 {
			return fmt.Errorf("slide %d: quiz slide has no items", i)
		}

		for j := range s.Items {
			q := &s.Items[j]
			if q.Question == "" {
				return fmt.Errorf("slide %d item %d: empty question", i, j)
			}
			if len(q.Options) < 2 {
				return fmt.Errorf("slide %d item %d: needs at least two options, has %d", i, j, len(q.Options))
			}
			if q.Correct < 0 || q.Correct >= len(q.Options) {
				return fmt.Errorf("slide %d item %d: correct index %d out of range [0,%d)", i, j, q.Correct, len(q.Options))
			}
			if seen[q.ID] {
				return fmt.Errorf("slide %d item %d: duplicate quiz item id %q", i, j, q.ID)
			}
			seen[q.ID] = true
		}
	}
	return nil
}
