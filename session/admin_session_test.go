package session_test

import (
	"errors"

	"civicreporter/models"
	"civicreporter/session"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

var _ = Describe("AdminSession", func() {
	Context("with the builtin verifier", func() {
		var s *session.AdminSession

		BeforeEach(func() {
			verifier, err := session.NewBuiltinVerifier()
			Expect(err).NotTo(HaveOccurred())
			s = session.NewAdminSession(verifier)
		})

		It("accepts the demo admin", func() {
			sess, err := s.Login("admin@civic.gov", "admin123")
			Expect(err).NotTo(HaveOccurred())
			Expect(sess.Email).To(Equal("admin@civic.gov"))
			Expect(sess.Role).To(Equal(models.RoleAdmin))
			Expect(sess.ID).NotTo(BeEmpty())
			Expect(s.IsAdmin()).To(BeTrue())
		})

		DescribeTable("rejects other pairs and leaves the session unset",
			func(email, password string) {
				_, err := s.Login(email, password)
				Expect(err).To(MatchError(session.ErrInvalidCredentials))
				_, ok := s.Current()
				Expect(ok).To(BeFalse())
				Expect(s.IsAdmin()).To(BeFalse())
			},
			Entry("wrong password", "admin@civic.gov", "admin1234"),
			Entry("wrong email", "root@civic.gov", "admin123"),
			Entry("empty", "", ""),
		)

		It("keeps an existing session after a failed login", func() {
			first, err := s.Login("admin@civic.gov", "admin123")
			Expect(err).NotTo(HaveOccurred())

			_, err = s.Login("admin@civic.gov", "nope")
			Expect(err).To(MatchError(session.ErrInvalidCredentials))

			current, ok := s.Current()
			Expect(ok).To(BeTrue())
			Expect(current).To(Equal(first))
		})

		It("clears the session on logout", func() {
			_, err := s.Login("admin@civic.gov", "admin123")
			Expect(err).NotTo(HaveOccurred())

			s.Logout()
			Expect(s.IsAdmin()).To(BeFalse())
			s.Logout()
			Expect(s.IsAdmin()).To(BeFalse())
		})
	})

	Context("with a mocked verifier", func() {
		var (
			ctrl     *gomock.Controller
			verifier *session.MockCredentialsVerifier
			s        *session.AdminSession
		)

		BeforeEach(func() {
			ctrl = gomock.NewController(GinkgoT())
			verifier = session.NewMockCredentialsVerifier(ctrl)
			s = session.NewAdminSession(verifier)
		})

		It("does not grant admin to other roles", func() {
			verifier.EXPECT().Verify("clerk@civic.gov", "pw").
				Return(models.AdminAccount{Email: "clerk@civic.gov", Role: "clerk"}, nil)

			_, err := s.Login("clerk@civic.gov", "pw")
			Expect(err).NotTo(HaveOccurred())
			Expect(s.IsAdmin()).To(BeFalse())
		})

		It("wraps unexpected verifier failures", func() {
			boom := errors.New("directory unavailable")
			verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(models.AdminAccount{}, boom)

			_, err := s.Login("admin@civic.gov", "admin123")
			Expect(err).To(MatchError(boom))
			Expect(err).NotTo(MatchError(session.ErrInvalidCredentials))
		})
	})
})
