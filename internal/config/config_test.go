package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fjglira/opml2org/internal/config"
)

var _ = Describe("Config", func() {
	Describe("Load", func() {
		It("should load minimal config on top of defaults", func() {
			cfg, err := config.Load(filepath.Join("..", "..", "testdata", "configs", "minimal.yaml"))
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.Headers).To(Equal([]config.HeaderConfig{{Field: "title"}}))
			Expect(cfg.Properties.Order).To(Equal("document"))
			Expect(cfg.Output.Encoding).To(Equal("utf-8"))
		})

		It("should load full config", func() {
			cfg, err := config.Load(filepath.Join("..", "..", "testdata", "configs", "full.yaml"))
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.Headers).To(HaveLen(4))
			Expect(cfg.Headers[2]).To(Equal(config.HeaderConfig{Field: "ownerName", Export: "AUTHOR"}))
			Expect(cfg.Properties.Order).To(Equal("sorted"))
			Expect(cfg.Input.Directories).To(ConsistOf("opml", "notes"))
			Expect(cfg.Input.Include).To(ContainElement("*.xml"))
			Expect(cfg.Input.Exclude).To(ContainElement("archive/**"))
			Expect(*cfg.Input.Recursive).To(BeFalse())
			Expect(cfg.Output.Encoding).To(Equal("windows-1252"))
			Expect(cfg.Output.Directory).To(Equal("build/org"))
			Expect(cfg.Output.CleanBeforeGenerate).To(BeTrue())
			Expect(cfg.Logging.Level).To(Equal("debug"))
			Expect(cfg.DryRun).To(BeTrue())
		})

		It("should return error for nonexistent file", func() {
			_, err := config.Load("nonexistent.yaml")
			Expect(err).To(HaveOccurred())
		})

		It("should return error for invalid YAML", func() {
			tmpFile := filepath.Join(GinkgoT().TempDir(), "invalid_opml2org.yaml")
			Expect(os.WriteFile(tmpFile, []byte("{{invalid yaml}}"), 0644)).To(Succeed())

			_, err := config.Load(tmpFile)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("[config]"))
		})
	})

	Describe("DefaultConfig", func() {
		It("should return config with sensible defaults", func() {
			cfg := config.DefaultConfig()
			Expect(cfg.Headers).To(Equal([]config.HeaderConfig{{Field: "title"}, {Field: "description"}}))
			Expect(cfg.Properties.Order).To(Equal("document"))
			Expect(cfg.Input.Include).To(ContainElement("*.opml"))
			Expect(*cfg.Input.Recursive).To(BeTrue())
			Expect(cfg.Output.Encoding).To(Equal("utf-8"))
			Expect(cfg.Output.Extension).To(Equal(".org"))
			Expect(cfg.Logging.Level).To(Equal("info"))
		})

		It("should pass validation", func() {
			Expect(config.Validate(config.DefaultConfig())).To(Succeed())
		})
	})

	Describe("Validate", func() {
		It("should pass for full config", func() {
			cfg, err := config.Load(filepath.Join("..", "..", "testdata", "configs", "full.yaml"))
			Expect(err).ToNot(HaveOccurred())
			Expect(config.Validate(cfg)).To(Succeed())
		})

		It("should report every problem in one error", func() {
			cfg, err := config.Load(filepath.Join("..", "..", "testdata", "configs", "invalid.yaml"))
			Expect(err).ToNot(HaveOccurred())

			err = config.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("properties.order"))
			Expect(err.Error()).To(ContainSubstring("output.encoding"))
			Expect(err.Error()).To(ContainSubstring("logging.level"))
		})

		It("should fail for a header without a field name", func() {
			cfg := config.DefaultConfig()
			cfg.Headers = append(cfg.Headers, config.HeaderConfig{Export: "AUTHOR"})
			err := config.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("headers[2].field"))
		})

		It("should fail for an export name with a colon", func() {
			cfg := config.DefaultConfig()
			cfg.Headers[0].Export = "TITLE:"
			err := config.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("headers[0].export"))
		})

		It("should fail if output extension has no dot", func() {
			cfg := config.DefaultConfig()
			cfg.Output.Extension = "org"
			err := config.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("output.extension"))
		})

		It("should fail if directories are empty", func() {
			cfg := config.DefaultConfig()
			cfg.Input.Directories = nil
			err := config.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("input.directories"))
		})
	})
})
