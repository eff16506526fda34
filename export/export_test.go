package export_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lixenwraith/deckplay/deck"
	"github.com/lixenwraith/deckplay/export"
)

func mustParse(src string) *deck.Deck {
	d, err := deck.Parse([]byte(src))
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return d
}

func defaultDeck() *deck.Deck {
	d, err := deck.Default()
	ExpectWithOffset(1, err).NotTo(HaveOccurred())
	return d
}

var _ = Describe("Render", func() {
	It("renders every slide kind into one document", func() {
		d := mustParse(`
title: "Export Deck"
slides:
  - kind: title
    module: "Module 1"
    icon: "📱"
    title: "Opening"
    body: ["line one"]
  - title: "Facts"
    body: ["a paragraph"]
    bullets:
      - { icon: "✅", text: "a bullet" }
    callouts:
      - { kind: warn, label: "Watch out", text: "callout text" }
    note: "a footnote"
  - kind: discussion
    title: "Talk"
    prompt: "What do you think?"
  - kind: quiz
    title: "Check"
    items:
      - id: q1
        question: "Pick one"
        options: ["first", "second"]
        correct: 1
        explanation: "second is right"
  - kind: agreement
    title: "Deal"
    checklist: ["I promise"]
`)

		data, err := export.Render(d)
		Expect(err).NotTo(HaveOccurred())
		html := string(data)

		Expect(html).To(HavePrefix("<!DOCTYPE html>"))
		Expect(html).To(ContainSubstring("<title>Export Deck</title>"))
		Expect(strings.Count(html, `<section class="slide`)).To(Equal(5))

		Expect(html).To(ContainSubstring(`kind-title active"`))
		Expect(html).To(ContainSubstring(`<p class="module">Module 1</p>`))
		Expect(html).To(ContainSubstring("<h1>📱 Opening</h1>"))

		Expect(html).To(ContainSubstring(`<span class="icon">✅</span>a bullet`))
		Expect(html).To(ContainSubstring(`class="callout warn"`))
		Expect(html).To(ContainSubstring(`<p class="note">a footnote</p>`))

		Expect(html).To(ContainSubstring("What do you think?"))
		Expect(html).To(ContainSubstring("Let's Talk"))

		Expect(html).To(ContainSubstring(`data-id="q1"`))
		Expect(html).To(ContainSubstring(`data-correct="1"`))
		Expect(html).To(ContainSubstring(`<button class="option" data-choice="0">first</button>`))
		Expect(html).To(ContainSubstring(`<p class="explanation">second is right</p>`))

		Expect(html).To(ContainSubstring("<li>I promise</li>"))
	})

	It("escapes markup in deck text", func() {
		d := mustParse(`
title: "Escape"
slides:
  - title: "<script>alert(1)</script>"
`)

		data, err := export.Render(d)
		Expect(err).NotTo(HaveOccurred())
		html := string(data)

		Expect(html).NotTo(ContainSubstring("<script>alert(1)</script>"))
		Expect(html).To(ContainSubstring("&lt;script&gt;"))
	})

	It("leaves no template actions in the output", func() {
		data, err := export.Render(defaultDeck())
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).NotTo(ContainSubstring("{{"))
	})

	It("renders the embedded course completely", func() {
		d := defaultDeck()

		data, err := export.Render(d)
		Expect(err).NotTo(HaveOccurred())
		html := string(data)

		Expect(html).To(ContainSubstring("<title>Your First Phone</title>"))
		Expect(strings.Count(html, `<section class="slide`)).To(Equal(d.SlideCount()))
		Expect(strings.Count(html, `class="quiz-item"`)).To(Equal(d.QuizItemCount()))
		Expect(html).To(ContainSubstring(`data-id="s83-q0"`))
	})

	It("carries the presenter follow script", func() {
		data, err := export.Render(defaultDeck())
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("new WebSocket"))
		Expect(string(data)).To(ContainSubstring("'/ws'"))
	})
})

var _ = Describe("WriteFile", func() {
	It("writes the rendered document and cleans up the temp file", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "course.html")

		Expect(export.WriteFile(path, defaultDeck())).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(HavePrefix("<!DOCTYPE html>"))

		_, err = os.Stat(path + ".tmp")
		Expect(os.IsNotExist(err)).To(BeTrue())
	})

	It("overwrites an existing export in place", func() {
		dir := GinkgoT().TempDir()
		path := filepath.Join(dir, "course.html")
		Expect(os.WriteFile(path, []byte("stale"), 0644)).To(Succeed())

		Expect(export.WriteFile(path, defaultDeck())).To(Succeed())

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(HavePrefix("<!DOCTYPE html>"))
	})

	It("fails when the target directory does not exist", func() {
		path := filepath.Join(GinkgoT().TempDir(), "missing", "course.html")

		err := export.WriteFile(path, defaultDeck())
		Expect(err).To(MatchError(ContainSubstring("failed to write temp file")))
	})
})
