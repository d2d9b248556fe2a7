package store_test

import (
	"time"

	"civicreporter/models"
	"civicreporter/store"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fixedCoords models.Coordinates

func (f fixedCoords) Coordinates() models.Coordinates { return models.Coordinates(f) }

var _ = Describe("IssueStore", func() {
	var (
		s   *store.IssueStore
		now time.Time
	)

	BeforeEach(func() {
		now = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)
		s = store.NewIssueStore(
			store.WithIssues(store.SampleIssues()),
			store.WithClock(store.ClockFunc(func() time.Time { return now })),
			store.WithCoordinates(fixedCoords{Latitude: 28.62, Longitude: 77.21}),
		)
	})

	newIssue := func(category models.IssueCategory) models.NewIssue {
		return models.NewIssue{
			Title:       "Pothole near school",
			Description: "Large hole in the road",
			Category:    category,
			Priority:    models.Low,
			Location:    "School Lane",
			ReportedBy:  "parent@example.com",
		}
	}

	Describe("Create", func() {
		It("assigns the next id and submitted status", func() {
			before := s.Stats().Total
			issue := s.Create(newIssue(models.Pothole))

			Expect(issue.ID).To(Equal(6))
			Expect(issue.Status).To(Equal(models.Submitted))
			Expect(issue.ReportDate).To(Equal("2026-10-14"))
			Expect(issue.AssignedTo).To(Equal("Public Works"))
			Expect(issue.Coordinates).To(Equal(models.Coordinates{Latitude: 28.62, Longitude: 77.21}))
			Expect(issue.PhotoURL).To(Equal(models.DefaultPhotoURL))
			Expect(s.Stats().Total).To(Equal(before + 1))
		})

		It("maps categories to departments", func() {
			Expect(s.Create(newIssue(models.Streetlight)).AssignedTo).To(Equal("Electrical Dept"))
			Expect(s.Create(newIssue(models.Water)).AssignedTo).To(Equal("Water Dept"))
			Expect(s.Create(newIssue(models.Sanitation)).AssignedTo).To(Equal("Sanitation"))
			Expect(s.Create(newIssue("graffiti")).AssignedTo).To(Equal("Public Works"))
		})

		It("never reuses a deleted id", func() {
			first := s.Create(newIssue(models.Pothole))
			Expect(s.Delete(first.ID)).To(Succeed())
			second := s.Create(newIssue(models.Pothole))
			Expect(second.ID).To(Equal(first.ID + 1))
		})

		It("keeps a supplied photo reference", func() {
			n := newIssue(models.Pothole)
			n.PhotoURL = "/api/photos/abc"
			Expect(s.Create(n).PhotoURL).To(Equal("/api/photos/abc"))
		})

		It("starts at 1 on an empty store", func() {
			Expect(store.NewIssueStore().Create(newIssue(models.Pothole)).ID).To(Equal(1))
		})
	})

	Describe("List", func() {
		It("matches search text case-insensitively across title, description and location", func() {
			issues := s.List(models.IssueFilter{SearchText: "POTHOLE"})
			Expect(issues).To(HaveLen(1))
			Expect(issues[0].ID).To(Equal(1))

			byLocation := s.List(models.IssueFilter{SearchText: "park"})
			Expect(byLocation).To(HaveLen(2))
			Expect(byLocation[0].ID).To(Equal(2))
			Expect(byLocation[1].ID).To(Equal(3))
		})

		It("combines status and category filters", func() {
			issues := s.List(models.IssueFilter{Status: models.InProgress})
			Expect(issues).To(HaveLen(2))

			issues = s.List(models.IssueFilter{Status: models.InProgress, Category: models.Water})
			Expect(issues).To(HaveLen(1))
			Expect(issues[0].ID).To(Equal(5))
		})

		It("preserves insertion order with an empty filter", func() {
			ids := []int{}
			for _, issue := range s.List(models.IssueFilter{}) {
				ids = append(ids, issue.ID)
			}
			Expect(ids).To(Equal([]int{1, 2, 3, 4, 5}))
		})

		It("returns copies", func() {
			issues := s.List(models.IssueFilter{})
			issues[0].Title = "changed"
			got, err := s.Get(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Title).To(Equal("Large pothole on Main Street"))
		})
	})

	Describe("Update", func() {
		It("changes only the patched fields", func() {
			before, _ := s.Get(1)
			resolved := models.Resolved
			_, err := s.Update(1, models.IssuePatch{Status: &resolved})
			Expect(err).NotTo(HaveOccurred())

			after, err := s.Get(1)
			Expect(err).NotTo(HaveOccurred())
			Expect(after.Status).To(Equal(models.Resolved))
			before.Status = models.Resolved
			Expect(after).To(Equal(before))
		})

		It("is idempotent", func() {
			high := models.High
			team := "Night Crew"
			patch := models.IssuePatch{Priority: &high, AssignedTo: &team}
			first, err := s.Update(2, patch)
			Expect(err).NotTo(HaveOccurred())
			second, err := s.Update(2, patch)
			Expect(err).NotTo(HaveOccurred())
			Expect(second).To(Equal(first))
		})

		It("returns ErrNotFound and leaves the collection unchanged", func() {
			before := s.All()
			resolved := models.Resolved
			_, err := s.Update(99, models.IssuePatch{Status: &resolved})
			Expect(err).To(MatchError(store.ErrNotFound))
			Expect(s.All()).To(Equal(before))
		})
	})

	Describe("Delete", func() {
		It("removes exactly that id", func() {
			Expect(s.Delete(3)).To(Succeed())
			_, err := s.Get(3)
			Expect(err).To(MatchError(store.ErrNotFound))
			Expect(s.Len()).To(Equal(4))

			remaining := []int{}
			for _, issue := range s.All() {
				remaining = append(remaining, issue.ID)
			}
			Expect(remaining).To(Equal([]int{1, 2, 4, 5}))
		})

		It("returns ErrNotFound for an unknown id", func() {
			before := s.All()
			Expect(s.Delete(42)).To(MatchError(store.ErrNotFound))
			Expect(s.All()).To(Equal(before))
		})
	})

	Describe("Stats", func() {
		It("counts the sample data", func() {
			Expect(s.Stats()).To(Equal(models.IssueStats{Total: 5, Submitted: 2, InProgress: 2, Resolved: 1}))
		})

		It("follows mutations", func() {
			resolved := models.Resolved
			_, err := s.Update(1, models.IssuePatch{Status: &resolved})
			Expect(err).NotTo(HaveOccurred())
			Expect(s.Delete(2)).To(Succeed())
			Expect(s.Stats()).To(Equal(models.IssueStats{Total: 4, Submitted: 1, InProgress: 1, Resolved: 2}))
		})
	})
})
