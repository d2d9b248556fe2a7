package photos_test

import (
	"bytes"
	"strings"

	"civicreporter/photos"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

var _ = Describe("Store", func() {
	var s *photos.Store

	BeforeEach(func() {
		s = photos.NewStore()
	})

	It("keeps a photo in memory behind a transient URL", func() {
		url, err := s.Save("hole.PNG", bytes.NewReader(pngHeader))
		Expect(err).NotTo(HaveOccurred())
		Expect(url).To(HavePrefix(photos.URLPrefix))

		p, err := s.Get(strings.TrimPrefix(url, photos.URLPrefix))
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Data).To(Equal(pngHeader))
		Expect(p.ContentType).To(Equal("image/png"))
		Expect(p.Filename).To(Equal("hole.PNG"))
	})

	It("rejects unsupported extensions", func() {
		_, err := s.Save("notes.txt", strings.NewReader("hello"))
		Expect(err).To(MatchError(photos.ErrUnsupportedType))
	})

	It("rejects image names carrying other content", func() {
		_, err := s.Save("evil.png", strings.NewReader("<html><script>alert(1)</script></html>"))
		Expect(err).To(MatchError(photos.ErrUnsupportedType))

		_, err = s.Save("blank.jpg", bytes.NewReader(make([]byte, 64)))
		Expect(err).To(MatchError(photos.ErrUnsupportedType))
	})

	It("accepts JPEG content", func() {
		jpeg := []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0x10, 'J', 'F', 'I', 'F', 0}
		url, err := s.Save("street.jpeg", bytes.NewReader(jpeg))
		Expect(err).NotTo(HaveOccurred())

		p, err := s.Get(strings.TrimPrefix(url, photos.URLPrefix))
		Expect(err).NotTo(HaveOccurred())
		Expect(p.ContentType).To(Equal("image/jpeg"))
	})

	It("rejects oversized photos", func() {
		big := bytes.Repeat([]byte{0}, photos.MaxFileSize+1)
		_, err := s.Save("big.jpg", bytes.NewReader(big))
		Expect(err).To(MatchError(photos.ErrTooLarge))
	})

	It("reports unknown tokens", func() {
		_, err := s.Get("missing")
		Expect(err).To(MatchError(photos.ErrNotFound))
	})
})
