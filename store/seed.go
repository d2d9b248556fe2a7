package store

import "civicreporter/models"

// SampleIssues returns the demo data loaded on startup.
func SampleIssues() []models.Issue {
	return []models.Issue{
		{
			ID:          1,
			Title:       "Large pothole on Main Street",
			Description: "Deep pothole causing vehicle damage near traffic signal",
			Category:    models.Pothole,
			Status:      models.Submitted,
			Priority:    models.High,
			Location:    "Main Street & 1st Avenue",
			Coordinates: models.Coordinates{Latitude: 28.6139, Longitude: 77.2090},
			ReportedBy:  "citizen@example.com",
			ReportDate:  "2025-09-01",
			AssignedTo:  "Public Works",
			PhotoURL:    "https://via.placeholder.com/300x200?text=Pothole",
		},
		{
			ID:          2,
			Title:       "Streetlight not working",
			Description: "Main road streetlight has been out for 3 days",
			Category:    models.Streetlight,
			Status:      models.InProgress,
			Priority:    models.Medium,
			Location:    "Park Avenue",
			Coordinates: models.Coordinates{Latitude: 28.6129, Longitude: 77.2080},
			ReportedBy:  "resident@example.com",
			ReportDate:  "2025-08-30",
			AssignedTo:  "Electrical Dept",
			PhotoURL:    "https://via.placeholder.com/300x200?text=Broken+Light",
		},
		{
			ID:          3,
			Title:       "Overflowing trash bin",
			Description: "Garbage bin full and attracting pests",
			Category:    models.Sanitation,
			Status:      models.Resolved,
			Priority:    models.Medium,
			Location:    "Central Park",
			Coordinates: models.Coordinates{Latitude: 28.6149, Longitude: 77.2100},
			ReportedBy:  "walker@example.com",
			ReportDate:  "2025-08-29",
			AssignedTo:  "Sanitation",
			PhotoURL:    "https://via.placeholder.com/300x200?text=Trash+Bin",
		},
		{
			ID:          4,
			Title:       "Broken sidewalk",
			Description: "Cracked sidewalk poses tripping hazard",
			Category:    models.Infrastructure,
			Status:      models.Submitted,
			Priority:    models.Medium,
			Location:    "Commerce Street",
			Coordinates: models.Coordinates{Latitude: 28.6119, Longitude: 77.2070},
			ReportedBy:  "pedestrian@example.com",
			ReportDate:  "2025-09-02",
			AssignedTo:  "Public Works",
			PhotoURL:    "https://via.placeholder.com/300x200?text=Broken+Sidewalk",
		},
		{
			ID:          5,
			Title:       "Water leakage from main pipe",
			Description: "Continuous water leak causing road damage",
			Category:    models.Water,
			Status:      models.InProgress,
			Priority:    models.High,
			Location:    "Industrial Road",
			Coordinates: models.Coordinates{Latitude: 28.6159, Longitude: 77.2110},
			ReportedBy:  "concerned@example.com",
			ReportDate:  "2025-08-31",
			AssignedTo:  "Water Dept",
			PhotoURL:    "https://via.placeholder.com/300x200?text=Water+Leak",
		},
	}
}
