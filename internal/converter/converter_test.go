package converter_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/fjglira/opml2org/internal/config"
	"github.com/fjglira/opml2org/internal/converter"
	"github.com/fjglira/opml2org/internal/domain"
)

var _ = Describe("Converter", func() {
	var (
		cfg  *config.Config
		conv *converter.DefaultConverter
		log  *logrus.Logger
	)

	readFixture := func(parts ...string) []byte {
		content, err := os.ReadFile(filepath.Join(append([]string{"..", "..", "testdata"}, parts...)...))
		Expect(err).ToNot(HaveOccurred())
		return content
	}

	BeforeEach(func() {
		log = logrus.New()
		log.SetOutput(io.Discard)
		cfg = config.DefaultConfig()
	})

	JustBeforeEach(func() {
		var err error
		conv, err = converter.NewConverter(cfg, log)
		Expect(err).ToNot(HaveOccurred())
	})

	Describe("Convert", func() {
		It("should match the expected Org output for simple.opml", func() {
			out, err := conv.Convert("simple.opml", readFixture("opml", "simple.opml"))
			Expect(err).ToNot(HaveOccurred())
			Expect(string(out)).To(Equal(string(readFixture("expected", "simple.org"))))
		})

		It("should be byte-identical across runs", func() {
			content := readFixture("opml", "simple.opml")
			first, err := conv.Convert("simple.opml", content)
			Expect(err).ToNot(HaveOccurred())
			second, err := conv.Convert("simple.opml", content)
			Expect(err).ToNot(HaveOccurred())
			Expect(second).To(Equal(first))
		})

		It("should omit a missing description without a placeholder", func() {
			out, err := conv.Convert("no-description.opml", readFixture("opml", "nested", "no-description.opml"))
			Expect(err).ToNot(HaveOccurred())
			Expect(string(out)).To(HavePrefix("#+TITLE: My Outline\n\n* Projects\n"))
			Expect(string(out)).ToNot(ContainSubstring("#+DESCRIPTION"))
		})

		It("should render nested headlines, properties and lists", func() {
			out, err := conv.Convert("no-description.opml", readFixture("opml", "nested", "no-description.opml"))
			Expect(err).ToNot(HaveOccurred())
			Expect(string(out)).To(Equal("#+TITLE: My Outline\n\n" +
				"* Projects\n" +
				"** Garden\n" +
				":PROPERTIES:\n" +
				":owner: sam\n" +
				":due: 2026-11-01\n" +
				":END:\n" +
				"\n" +
				"- Plant bulbs\n" +
				"Tulips\n" +
				"\n" +
				"Crocus\n" +
				"\n"))
		})

		It("should start with the blank separator when there are no headers", func() {
			out, err := conv.Convert("", []byte(`<opml><head/><body><outline text="only"/></body></opml>`))
			Expect(err).ToNot(HaveOccurred())
			Expect(string(out)).To(Equal("\n\nonly\n\n"))
		})

		It("should fail on an outline without text and produce no output", func() {
			out, err := conv.Convert("missing-text.opml", readFixture("invalid", "missing-text.opml"))
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, domain.ErrMissingText)).To(BeTrue())
			Expect(out).To(BeNil())
			Expect(err.Error()).To(ContainSubstring("missing-text.opml:8"))
		})

		It("should skip outlines with an unrecognised structure", func() {
			out, err := conv.Convert("", []byte(`<opml><head/><body><outline text="keep"/>`+
				`<outline text="x" structure="table"><outline text="child"/></outline></body></opml>`))
			Expect(err).ToNot(HaveOccurred())
			Expect(string(out)).To(Equal("\n\nkeep\n\n"))
		})

		It("should fail on a duplicated attribute", func() {
			_, err := conv.Convert("", []byte(`<opml><head/><body><outline text="a" text="b"/></body></opml>`))
			Expect(errors.Is(err, domain.ErrMalformedInput)).To(BeTrue())
		})

		It("should fail on malformed XML", func() {
			_, err := conv.Convert("malformed.opml", readFixture("invalid", "malformed.opml"))
			Expect(errors.Is(err, domain.ErrMalformedInput)).To(BeTrue())
		})

		It("should re-encode latin1 input as UTF-8", func() {
			out, err := conv.Convert("latin1.opml", readFixture("opml", "latin1.opml"))
			Expect(err).ToNot(HaveOccurred())
			Expect(string(out)).To(Equal("#+TITLE: Café\n\nRésumé\n\n"))
		})

		Context("with mapped headers", func() {
			BeforeEach(func() {
				cfg.Headers = []config.HeaderConfig{
					{Field: "title"},
					{Field: "dateCreated", Export: "DATE"},
				}
			})

			It("should emit each configured field in order", func() {
				out, err := conv.Convert("no-description.opml", readFixture("opml", "nested", "no-description.opml"))
				Expect(err).ToNot(HaveOccurred())
				Expect(string(out)).To(HavePrefix("#+TITLE: My Outline\n#+DATE: Mon, 12 Oct 2026 09:00:00 GMT\n\n"))
			})
		})

		Context("with sorted properties", func() {
			BeforeEach(func() {
				cfg.Properties.Order = "sorted"
			})

			It("should sort the property block", func() {
				out, err := conv.Convert("no-description.opml", readFixture("opml", "nested", "no-description.opml"))
				Expect(err).ToNot(HaveOccurred())
				Expect(string(out)).To(ContainSubstring(":PROPERTIES:\n:due: 2026-11-01\n:owner: sam\n:END:\n"))
			})
		})

		Context("with a single-byte output encoding", func() {
			BeforeEach(func() {
				cfg.Output.Encoding = "windows-1252"
			})

			It("should encode representable characters", func() {
				out, err := conv.Convert("", []byte(`<opml><head/><body><outline text="café"/></body></opml>`))
				Expect(err).ToNot(HaveOccurred())
				Expect(out).To(Equal([]byte("\n\ncaf\xe9\n\n")))
			})

			It("should substitute characters it cannot encode", func() {
				out, err := conv.Convert("", []byte(`<opml><head/><body><outline text="日本"/></body></opml>`))
				Expect(err).ToNot(HaveOccurred())
				Expect(out).To(Equal([]byte("\n\n\x1a\x1a\n\n")))
			})
		})
	})

	Describe("NewConverter", func() {
		It("should reject an unknown output encoding", func() {
			cfg.Output.Encoding = "klingon"
			_, err := converter.NewConverter(cfg, log)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("klingon"))
		})
	})
})
