// Package seed holds the built-in sample content the public views fall back
// to when nothing has been stored yet, plus the default faculty roster the
// admin manager starts from.
package seed

import (
	"github.com/okdev/milton/internal/app/models"
)

// PlaceholderPhotoURL is substituted for faculty members without a photo.
const PlaceholderPhotoURL = "https://images.unsplash.com/photo-1649972904349-6e44c42644a7?w=400&h=400&auto=format&fit=crop&q=60"

// Notices returns the built-in sample notices.
func Notices() []models.Notice {
	return []models.Notice{
		{
			ID:       1,
			Title:    "Fall Semester Registration Opens",
			Date:     "2023-07-15",
			Content:  "Registration for the Fall 2023 semester begins on August 1st. All students must register through the student portal.",
			Category: models.NoticeCategoryAcademic,
			Time:     "9:00 AM",
		},
		{
			ID:       2,
			Title:    "Campus Closure - National Holiday",
			Date:     "2023-07-21",
			Content:  "The campus will be closed on July 21st for the National Holiday. All classes and administrative services will resume on July 22nd.",
			Category: models.NoticeCategoryAdministrative,
			Time:     "8:00 AM",
		},
		{
			ID:       3,
			Title:    "Guest Lecture: Dr. Sarah Johnson",
			Date:     "2023-07-25",
			Content:  "Join us for a special guest lecture by Dr. Sarah Johnson on \"Advances in Artificial Intelligence\" at the Main Auditorium.",
			Category: models.NoticeCategoryEvent,
			Time:     "2:00 PM",
		},
		{
			ID:       4,
			Title:    "Library Hours Extended for Finals",
			Date:     "2023-08-05",
			Content:  "The library will extend its operating hours from 8:00 AM to midnight during the final exam period (August 10-20).",
			Category: models.NoticeCategoryAcademic,
			Time:     "10:30 AM",
		},
		{
			ID:       5,
			Title:    "International Students Orientation",
			Date:     "2023-08-15",
			Content:  "Mandatory orientation for all new international students will be held at the International Center.",
			Category: models.NoticeCategoryEvent,
			Time:     "9:30 AM",
		},
	}
}

// Programs returns the built-in sample programs.
func Programs() []models.Program {
	return []models.Program{
		{
			ID:          1,
			Title:       "Bachelor of Science in Computer Science",
			Description: "Gain expertise in algorithms, software development, artificial intelligence, and data science in our comprehensive computer science program.",
			Image:       "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?q=80&w=2070&auto=format&fit=crop",
			Duration:    "4 years",
			StartDate:   "September 2023",
			Category:    models.ProgramCategoryUndergraduate,
			Featured:    true,
		},
		{
			ID:          2,
			Title:       "Master of Business Administration",
			Description: "Develop leadership skills and business acumen needed to excel in the global business environment with our industry-focused MBA program.",
			Image:       "https://images.unsplash.com/photo-1600880292089-90a7e086ee0c?q=80&w=2074&auto=format&fit=crop",
			Duration:    "2 years",
			StartDate:   "January 2024",
			Category:    models.ProgramCategoryGraduate,
			Featured:    true,
		},
		{
			ID:          3,
			Title:       "Certificate in Digital Marketing",
			Description: "Master the latest digital marketing strategies, tools, and techniques with our industry-recognized certificate program.",
			Image:       "https://images.unsplash.com/photo-1551288049-bebda4e38f71?q=80&w=2070&auto=format&fit=crop",
			Duration:    "6 months",
			StartDate:   "Flexible",
			Category:    models.ProgramCategoryCertificate,
			Featured:    true,
		},
		{
			ID:          4,
			Title:       "Bachelor of Arts in Psychology",
			Description: "Explore the human mind and behavior through our comprehensive psychology program that prepares you for careers in counseling, research, and human services.",
			Image:       "https://images.unsplash.com/photo-1551836022-d5d88e9218df?q=80&w=2070&auto=format&fit=crop",
			Duration:    "4 years",
			StartDate:   "September 2023",
			Category:    models.ProgramCategoryUndergraduate,
			Featured:    false,
		},
	}
}

// DefaultFacultyMembers returns the roster the faculty manager starts from
// when no collection has been stored.
func DefaultFacultyMembers() []models.FacultyMember {
	return []models.FacultyMember{
		{
			ID:    "1",
			Name:  "Dr. Sarah Johnson",
			Title: "Dean of Computer Science",
			Photo: "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158?w=400&h=400&auto=format&fit=crop&q=60",
			Bio:   "Dr. Johnson has over 15 years of experience in computer science education and research.",
		},
		{
			ID:    "2",
			Name:  "Prof. Michael Rodriguez",
			Title: "Head of Business School",
			Photo: "https://images.unsplash.com/photo-1581092795360-fd1ca04f0952?w=400&h=400&auto=format&fit=crop&q=60",
			Bio:   "Professor Rodriguez is an expert in international business with a focus on emerging markets.",
		},
	}
}
