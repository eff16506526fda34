package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/lixenwraith/deckplay/config"
)

func writeConfig(content string) string {
	path := filepath.Join(GinkgoT().TempDir(), "deckplay.yaml")
	ExpectWithOffset(1, os.WriteFile(path, []byte(content), 0644)).To(Succeed())
	return path
}

var _ = Describe("Load", func() {
	It("reads every section", func() {
		path := writeConfig(`
deck_path: /decks/course.yaml
color: "256"
mute: true
resume: true
server:
  listen: ":8080"
progress:
  database: /data/progress.db
log:
  file: /tmp/deckplay.log
  verbose: true
`)

		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.DeckPath).To(Equal("/decks/course.yaml"))
		Expect(cfg.Color).To(Equal("256"))
		Expect(cfg.Mute).To(BeTrue())
		Expect(cfg.Resume).To(BeTrue())
		Expect(cfg.Server.Listen).To(Equal(":8080"))
		Expect(cfg.Progress.Database).To(Equal("/data/progress.db"))
		Expect(cfg.Log.File).To(Equal("/tmp/deckplay.log"))
		Expect(cfg.Log.Verbose).To(BeTrue())
	})

	It("fills defaults for omitted fields", func() {
		path := writeConfig(`mute: true`)

		cfg, err := config.Load(path)
		Expect(err).NotTo(HaveOccurred())

		Expect(cfg.Color).To(Equal("auto"))
		Expect(cfg.Mute).To(BeTrue())
		Expect(cfg.Server.Listen).To(BeEmpty())
		Expect(cfg.Progress.Database).To(BeEmpty())
	})

	It("fails for a missing file", func() {
		_, err := config.Load(filepath.Join(GinkgoT().TempDir(), "absent.yaml"))
		Expect(err).To(MatchError(ContainSubstring("failed to read config file")))
	})

	It("fails for malformed YAML", func() {
		path := writeConfig("deck_path: [broken")

		_, err := config.Load(path)
		Expect(err).To(MatchError(ContainSubstring("failed to parse")))
	})
})

var _ = Describe("Default", func() {
	It("matches a loaded empty file", func() {
		cfg := config.Default()

		Expect(cfg.Color).To(Equal("auto"))
		Expect(cfg.DeckPath).To(BeEmpty())
		Expect(cfg.Mute).To(BeFalse())
		Expect(cfg.Resume).To(BeFalse())
	})
})
