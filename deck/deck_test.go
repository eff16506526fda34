package deck_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lixenwraith/deckplay/deck"
)

var _ = Describe("Parse", func() {
	Context("with a minimal deck", func() {
		var d *deck.Deck

		BeforeEach(func() {
			var err error
			d, err = deck.Parse([]byte(`
slides:
  - title: "One"
  - kind: quiz
    title: "Check"
    items:
      - question: "Pick one"
        options: ["a", "b"]
        correct: 1
`))
			Expect(err).NotTo(HaveOccurred())
		})

		It("should default the deck title", func() {
			Expect(d.Title).To(Equal("Untitled Deck"))
		})

		It("should default slide kind to content", func() {
			s, ok := d.Slide(0)
			Expect(ok).To(BeTrue())
			Expect(s.Kind).To(Equal(deck.KindContent))
		})

		It("should assign positional quiz item IDs", func() {
			s, ok := d.Slide(1)
			Expect(ok).To(BeTrue())
			Expect(s.Items[0].ID).To(Equal("s1-q0"))
		})

		It("should index quiz items by ID", func() {
			item, slide, ok := d.Item("s1-q0")
			Expect(ok).To(BeTrue())
			Expect(slide).To(Equal(1))
			Expect(item.Question).To(Equal("Pick one"))
			Expect(d.QuizItemCount()).To(Equal(1))
		})
	})

	Context("with defaulted callout kinds", func() {
		It("should fall back to the tip accent", func() {
			d, err := deck.Parse([]byte(`
slides:
  - title: "One"
    callouts:
      - label: "Note"
        text: "remember this"
`))
			Expect(err).NotTo(HaveOccurred())
			s, _ := d.Slide(0)
			Expect(s.Callouts[0].Kind).To(Equal(deck.CalloutTip))
		})
	})

	Context("with invalid decks", func() {
		It("should reject a deck without slides", func() {
			_, err := deck.Parse([]byte(`title: "Empty"`))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("no slides"))
		})

		It("should reject an unknown slide kind", func() {
			_, err := deck.Parse([]byte(`
slides:
  - kind: interpretive-dance
    title: "One"
`))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unknown kind"))
		})

		It("should reject a quiz slide without items", func() {
			_, err := deck.Parse([]byte(`
slides:
  - kind: quiz
    title: "Hollow"
`))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("no items"))
		})

		It("should reject an item with an empty question", func() {
			_, err := deck.Parse([]byte(`
slides:
  - kind: quiz
    title: "Check"
    items:
      - options: ["a", "b"]
        correct: 0
`))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("empty question"))
		})

		It("should reject an item with fewer than two options", func() {
			_, err := deck.Parse([]byte(`
slides:
  - kind: quiz
    title: "Check"
    items:
      - question: "Only one way"
        options: ["a"]
        correct: 0
`))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("at least two options"))
		})

		It("should reject a correct index out of range", func() {
			_, err := deck.Parse([]byte(`
slides:
  - kind: quiz
    title: "Check"
    items:
      - question: "Pick one"
        options: ["a", "b"]
        correct: 2
`))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("out of range"))
		})

		It("should reject duplicate quiz item IDs", func() {
			_, err := deck.Parse([]byte(`
slides:
  - kind: quiz
    title: "Check"
    items:
      - id: dup
        question: "First"
        options: ["a", "b"]
        correct: 0
      - id: dup
        question: "Second"
        options: ["a", "b"]
        correct: 0
`))
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("duplicate"))
		})
	})
})

var _ = Describe("Deck", func() {
	var d *deck.Deck

	BeforeEach(func() {
		var err error
		d, err = deck.Parse([]byte(`
title: "Course"
slides:
  - kind: title
    title: "Welcome"
  - title: "Basics"
  - kind: title
    title: "Advanced"
    module: "Module 2"
  - title: "Details"
`))
		Expect(err).NotTo(HaveOccurred())
	})

	It("should count slides", func() {
		Expect(d.SlideCount()).To(Equal(4))
	})

	It("should return slides in range", func() {
		s, ok := d.Slide(3)
		Expect(ok).To(BeTrue())
		Expect(s.Title).To(Equal("Details"))
	})

	It("should report out of range positions", func() {
		_, ok := d.Slide(-1)
		Expect(ok).To(BeFalse())
		_, ok = d.Slide(4)
		Expect(ok).To(BeFalse())
	})

	It("should list title slides as modules", func() {
		mods := d.Modules()
		Expect(mods).To(HaveLen(2))
		Expect(mods[0]).To(Equal(deck.ModuleRef{Title: "Welcome", Slide: 0}))
		Expect(mods[1]).To(Equal(deck.ModuleRef{Title: "Module 2", Slide: 2}))
	})

	It("should fall back to slide 0 when no title slides exist", func() {
		flat, err := deck.Parse([]byte(`
title: "Flat"
slides:
  - title: "Only"
`))
		Expect(err).NotTo(HaveOccurred())
		mods := flat.Modules()
		Expect(mods).To(HaveLen(1))
		Expect(mods[0]).To(Equal(deck.ModuleRef{Title: "Flat", Slide: 0}))
	})

	It("should not resolve unknown item IDs", func() {
		_, _, ok := d.Item("nope")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("Load", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "deck-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	It("should load a deck from a file", func() {
		path := filepath.Join(dir, "deck.yaml")
		err := os.WriteFile(path, []byte("slides:\n  - title: \"One\"\n"), 0o644)
		Expect(err).NotTo(HaveOccurred())

		d, err := deck.Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(d.SlideCount()).To(Equal(1))
	})

	It("should report a missing file", func() {
		_, err := deck.Load(filepath.Join(dir, "absent.yaml"))
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("failed to read deck file"))
	})

	It("should wrap parse failures with the path", func() {
		path := filepath.Join(dir, "broken.yaml")
		err := os.WriteFile(path, []byte("slides: {not a list}"), 0o644)
		Expect(err).NotTo(HaveOccurred())

		_, err = deck.Load(path)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("broken.yaml"))
	})
})

var _ = Describe("Default", func() {
	var d *deck.Deck

	BeforeEach(func() {
		var err error
		d, err = deck.Default()
		Expect(err).NotTo(HaveOccurred())
	})

	It("should embed the full course", func() {
		Expect(d.Title).To(Equal("Your First Phone"))
		Expect(d.SlideCount()).To(Equal(89))
	})

	It("should open with the welcome title slide", func() {
		s, ok := d.Slide(0)
		Expect(ok).To(BeTrue())
		Expect(s.Kind).To(Equal(deck.KindTitle))
		Expect(s.Title).To(Equal("Welcome, Elli!"))
	})

	It("should carry eleven quiz items across four quiz slides", func() {
		Expect(d.QuizItemCount()).To(Equal(11))

		quizSlides := 0
		for i := 0; i < d.SlideCount(); i++ {
			s, _ := d.Slide(i)
			if s.Kind == deck.KindQuiz {
				quizSlides++
			}
		}
		Expect(quizSlides).To(Equal(4))
	})

	It("should resolve every quiz item back to its slide", func() {
		for i := 0; i < d.SlideCount(); i++ {
			s, _ := d.Slide(i)
			for j := range s.Items {
				item, slide, ok := d.Item(s.Items[j].ID)
				Expect(ok).To(BeTrue())
				Expect(slide).To(Equal(i))
				Expect(item.Question).To(Equal(s.Items[j].Question))
			}
		}
	})

	It("should list all course modules", func() {
		mods := d.Modules()
		Expect(mods).To(HaveLen(11))
		Expect(mods[0].Slide).To(Equal(0))
		Expect(mods[1].Title).To(Equal("Module 2 — Tech Habits"))
		Expect(mods[10].Title).To(Equal("You Did It, Elli!"))
	})

	It("should end on the agreement and closing slides", func() {
		agreement, ok := d.Slide(d.SlideCount() - 2)
		Expect(ok).To(BeTrue())
		Expect(agreement.Kind).To(Equal(deck.KindAgreement))
		Expect(agreement.Checklist).To(HaveLen(11))

		closing, ok := d.Slide(d.SlideCount() - 1)
		Expect(ok).To(BeTrue())
		Expect(closing.Kind).To(Equal(deck.KindTitle))
	})
})
