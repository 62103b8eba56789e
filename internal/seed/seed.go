package seed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/eduforge/backend/internal/app/models"
	"github.com/eduforge/backend/internal/app/repositories"
	"github.com/eduforge/backend/internal/pkg/apperrors"
	"github.com/eduforge/backend/internal/pkg/auth"
)

// DefaultPassword is the password of every seeded account.
const DefaultPassword = "password123"

func strPtr(s string) *string { return &s }

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Accounts returns the demo accounts. Every account shares DefaultPassword;
// the hash is computed once and reused.
func Accounts() ([]*models.Account, error) {
	hash, err := auth.HashPassword(DefaultPassword)
	if err != nil {
		return nil, err
	}

	return []*models.Account{
		{
			Identity: models.Identity{
				ID:     "1",
				Email:  "student@example.com",
				Name:   "John Student",
				Avatar: strPtr("https://randomuser.me/api/portraits/men/32.jpg"),
				Roles:  []models.Role{models.RoleStudent},
			},
			PasswordHash: hash,
		},
		{
			Identity: models.Identity{
				ID:     "2",
				Email:  "instructor@example.com",
				Name:   "Sarah Instructor",
				Avatar: strPtr("https://randomuser.me/api/portraits/women/44.jpg"),
				Roles:  []models.Role{models.RoleInstructor},
			},
			PasswordHash: hash,
		},
		{
			Identity: models.Identity{
				ID:     "3",
				Email:  "admin@example.com",
				Name:   "Admin User",
				Avatar: strPtr("https://randomuser.me/api/portraits/men/68.jpg"),
				Roles:  []models.Role{models.RoleAdmin},
			},
			PasswordHash: hash,
		},
		{
			Identity: models.Identity{
				ID:     "4",
				Email:  "both@example.com",
				Name:   "Multi Role User",
				Avatar: strPtr("https://randomuser.me/api/portraits/women/17.jpg"),
				Roles:  []models.Role{models.RoleStudent, models.RoleInstructor},
			},
			PasswordHash: hash,
		},
	}, nil
}

// Courses returns the demo catalog.
func Courses() []models.Course {
	return []models.Course{
		{
			ID:              "1",
			Title:           "Machine Learning Fundamentals",
			Slug:            "machine-learning-fundamentals",
			Description:     "Learn the core concepts of machine learning and build your first models.",
			LongDescription: "This comprehensive course covers all the fundamentals of machine learning, from basic algorithms to practical implementation. You'll learn about supervised and unsupervised learning, neural networks, and how to build and evaluate models using Python and popular libraries like scikit-learn and TensorFlow.",
			Instructor: models.InstructorRef{
				ID:     "101",
				Name:   "Dr. Sarah Chen",
				Avatar: "https://randomuser.me/api/portraits/women/44.jpg",
			},
			Rating:       4.9,
			ReviewCount:  1247,
			StudentCount: 12453,
			Duration:     "24 hours",
			Level:        models.LevelBeginner,
			Price:        89.99,
			Image:        "https://images.unsplash.com/photo-1581092921461-7d65ca45393a?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=1470&q=80",
			Category:     "Data Science",
			Tags:         []string{"Machine Learning", "Python", "Data Science", "AI"},
			AIEnhanced:   true,
			Featured:     true,
			LastUpdated:  date("2023-11-15"),
			Language:     "English",
			Curriculum: &models.Curriculum{
				Sections: []models.Section{
					{
						Title: "Introduction to Machine Learning",
						Lectures: []models.Lecture{
							{Title: "What is Machine Learning?", Duration: "10:23", Type: models.LectureVideo, Preview: true},
							{Title: "Types of Machine Learning", Duration: "15:45", Type: models.LectureVideo},
							{Title: "Setting Up Your Environment", Duration: "12:18", Type: models.LectureVideo},
							{Title: "Introduction Quiz", Duration: "10 questions", Type: models.LectureQuiz},
						},
					},
					{
						Title: "Supervised Learning",
						Lectures: []models.Lecture{
							{Title: "Linear Regression", Duration: "18:32", Type: models.LectureVideo},
							{Title: "Logistic Regression", Duration: "20:15", Type: models.LectureVideo},
							{Title: "Decision Trees", Duration: "22:47", Type: models.LectureVideo},
							{Title: "Support Vector Machines", Duration: "25:10", Type: models.LectureVideo},
							{Title: "Supervised Learning Assignment", Duration: "1 hour", Type: models.LectureAssignment},
						},
					},
				},
			},
			Requirements: []string{
				"Basic Python programming knowledge",
				"Understanding of basic statistics",
				"No prior machine learning experience required",
			},
			Objectives: []string{
				"Understand core machine learning concepts and algorithms",
				"Build and train machine learning models using Python",
				"Evaluate model performance and improve results",
				"Apply machine learning to real-world problems",
			},
		},
		{
			ID:              "2",
			Title:           "Full-Stack Web Development",
			Slug:            "full-stack-web-development",
			Description:     "Master modern web development with React, Node.js, and MongoDB.",
			LongDescription: "Become a proficient full-stack developer with this comprehensive course. You'll learn front-end development with React, back-end with Node.js and Express, and database management with MongoDB. By the end, you'll be able to build complete, production-ready web applications from scratch.",
			Instructor: models.InstructorRef{
				ID:     "102",
				Name:   "Michael Johnson",
				Avatar: "https://randomuser.me/api/portraits/men/32.jpg",
			},
			Rating:       4.8,
			ReviewCount:  987,
			StudentCount: 8765,
			Duration:     "36 hours",
			Level:        models.LevelIntermediate,
			Price:        94.99,
			Image:        "https://images.unsplash.com/photo-1547658719-da2b51169166?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=1374&q=80",
			Category:     "Web Development",
			Tags:         []string{"React", "Node.js", "MongoDB", "JavaScript", "Full-Stack"},
			AIEnhanced:   true,
			Featured:     true,
			LastUpdated:  date("2023-12-01"),
			Language:     "English",
			Curriculum: &models.Curriculum{
				Sections: []models.Section{
					{
						Title: "Front-End Development with React",
						Lectures: []models.Lecture{
							{Title: "React Fundamentals", Duration: "22:15", Type: models.LectureVideo, Preview: true},
							{Title: "Components and Props", Duration: "18:30", Type: models.LectureVideo},
							{Title: "State and Lifecycle", Duration: "25:12", Type: models.LectureVideo},
							{Title: "React Hooks", Duration: "30:45", Type: models.LectureVideo},
							{Title: "Building a React App", Duration: "2 hours", Type: models.LectureAssignment},
						},
					},
					{
						Title: "Back-End Development with Node.js",
						Lectures: []models.Lecture{
							{Title: "Node.js Basics", Duration: "20:18", Type: models.LectureVideo},
							{Title: "Express Framework", Duration: "24:32", Type: models.LectureVideo},
							{Title: "RESTful API Design", Duration: "28:15", Type: models.LectureVideo},
							{Title: "Authentication with JWT", Duration: "32:47", Type: models.LectureVideo},
							{Title: "Back-End Project", Duration: "3 hours", Type: models.LectureAssignment},
						},
					},
				},
			},
			Requirements: []string{
				"Basic HTML, CSS, and JavaScript knowledge",
				"Understanding of web development concepts",
				"No prior React or Node.js experience required",
			},
			Objectives: []string{
				"Build modern, responsive front-ends with React",
				"Create robust back-end services with Node.js and Express",
				"Design and implement MongoDB databases",
				"Deploy full-stack applications to production",
			},
		},
		{
			ID:              "3",
			Title:           "Digital Marketing Mastery",
			Slug:            "digital-marketing-mastery",
			Description:     "Learn to create and execute effective digital marketing campaigns.",
			LongDescription: "This comprehensive digital marketing course covers all essential aspects of online marketing. From SEO and content marketing to social media strategies and paid advertising, you'll learn how to create integrated campaigns that drive traffic, generate leads, and increase conversions.",
			Instructor: models.InstructorRef{
				ID:     "103",
				Name:   "Emma Rodriguez",
				Avatar: "https://randomuser.me/api/portraits/women/63.jpg",
			},
			Rating:       4.7,
			ReviewCount:  756,
			StudentCount: 6542,
			Duration:     "18 hours",
			Level:        models.LevelAllLevels,
			Price:        74.99,
			Image:        "https://images.unsplash.com/photo-1460925895917-afdab827c52f?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=1415&q=80",
			Category:     "Marketing",
			Tags:         []string{"Digital Marketing", "SEO", "Social Media", "Content Marketing"},
			AIEnhanced:   false,
			LastUpdated:  date("2023-10-20"),
			Language:     "English",
			Curriculum: &models.Curriculum{
				Sections: []models.Section{
					{
						Title: "Digital Marketing Fundamentals",
						Lectures: []models.Lecture{
							{Title: "Introduction to Digital Marketing", Duration: "15:20", Type: models.LectureVideo, Preview: true},
							{Title: "Building a Marketing Strategy", Duration: "22:45", Type: models.LectureVideo},
							{Title: "Understanding Your Audience", Duration: "18:30", Type: models.LectureVideo},
							{Title: "Marketing Funnel Basics", Duration: "20:15", Type: models.LectureVideo},
						},
					},
					{
						Title: "Search Engine Optimization (SEO)",
						Lectures: []models.Lecture{
							{Title: "SEO Fundamentals", Duration: "25:18", Type: models.LectureVideo},
							{Title: "Keyword Research", Duration: "28:32", Type: models.LectureVideo},
							{Title: "On-Page SEO Techniques", Duration: "22:45", Type: models.LectureVideo},
							{Title: "Off-Page SEO Strategies", Duration: "24:10", Type: models.LectureVideo},
							{Title: "SEO Audit Project", Duration: "2 hours", Type: models.LectureAssignment},
						},
					},
				},
			},
			Requirements: []string{
				"No prior marketing experience required",
				"Basic computer skills",
				"Interest in digital marketing",
			},
			Objectives: []string{
				"Create comprehensive digital marketing strategies",
				"Implement effective SEO techniques to improve search rankings",
				"Develop engaging content marketing campaigns",
				"Manage social media marketing effectively",
				"Analyze marketing performance and optimize campaigns",
			},
		},
		{
			ID:              "4",
			Title:           "UX/UI Design Principles",
			Slug:            "ux-ui-design-principles",
			Description:     "Master the fundamentals of user experience and interface design.",
			LongDescription: "Learn the essential principles and practices of UX/UI design in this comprehensive course. You'll discover how to create intuitive, user-centered designs that solve real problems. From research and wireframing to prototyping and testing, this course covers the entire UX/UI design process.",
			Instructor: models.InstructorRef{
				ID:     "104",
				Name:   "Alex Kim",
				Avatar: "https://randomuser.me/api/portraits/men/11.jpg",
			},
			Rating:       4.9,
			ReviewCount:  632,
			StudentCount: 5321,
			Duration:     "22 hours",
			Level:        models.LevelBeginner,
			Price:        84.99,
			Image:        "https://images.unsplash.com/photo-1586717791821-3f44a563fa4c?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=1470&q=80",
			Category:     "Design",
			Tags:         []string{"UX Design", "UI Design", "Figma", "User Research"},
			AIEnhanced:   true,
			Featured:     true,
			LastUpdated:  date("2023-11-28"),
			Language:     "English",
			Curriculum: &models.Curriculum{
				Sections: []models.Section{
					{
						Title: "Introduction to UX/UI Design",
						Lectures: []models.Lecture{
							{Title: "What is UX/UI Design?", Duration: "12:30", Type: models.LectureVideo, Preview: true},
							{Title: "The Design Process", Duration: "18:45", Type: models.LectureVideo},
							{Title: "User-Centered Design Principles", Duration: "20:15", Type: models.LectureVideo},
							{Title: "Design Thinking Framework", Duration: "22:30", Type: models.LectureVideo},
						},
					},
					{
						Title: "User Research and Personas",
						Lectures: []models.Lecture{
							{Title: "User Research Methods", Duration: "25:18", Type: models.LectureVideo},
							{Title: "Creating User Personas", Duration: "20:32", Type: models.LectureVideo},
							{Title: "User Journey Mapping", Duration: "22:45", Type: models.LectureVideo},
							{Title: "Research Analysis Techniques", Duration: "18:10", Type: models.LectureVideo},
							{Title: "User Research Project", Duration: "2 hours", Type: models.LectureAssignment},
						},
					},
				},
			},
			Requirements: []string{
				"No prior design experience required",
				"Basic computer skills",
				"Access to Figma (free version is sufficient)",
			},
			Objectives: []string{
				"Understand core UX/UI design principles and methodologies",
				"Conduct effective user research and create personas",
				"Design intuitive information architecture and user flows",
				"Create wireframes and interactive prototypes",
				"Test designs with users and iterate based on feedback",
			},
		},
		{
			ID:              "5",
			Title:           "Python for Data Science",
			Slug:            "python-for-data-science",
			Description:     "Learn Python programming specifically for data analysis and visualization.",
			LongDescription: "This course teaches Python programming with a focus on data science applications. You'll learn how to use libraries like NumPy, Pandas, and Matplotlib to analyze and visualize data effectively. By the end of the course, you'll be able to work with real-world datasets and extract meaningful insights.",
			Instructor: models.InstructorRef{
				ID:     "105",
				Name:   "David Wilson",
				Avatar: "https://randomuser.me/api/portraits/men/32.jpg",
			},
			Rating:       4.8,
			ReviewCount:  845,
			StudentCount: 7823,
			Duration:     "28 hours",
			Level:        models.LevelIntermediate,
			Price:        79.99,
			Image:        "https://images.unsplash.com/photo-1551288049-bebda4e38f71?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=1470&q=80",
			Category:     "Data Science",
			Tags:         []string{"Python", "Data Analysis", "Data Visualization", "Pandas", "NumPy"},
			AIEnhanced:   true,
			LastUpdated:  date("2023-09-15"),
			Language:     "English",
		},
		{
			ID:              "6",
			Title:           "Advanced JavaScript Concepts",
			Slug:            "advanced-javascript-concepts",
			Description:     "Deep dive into advanced JavaScript patterns, concepts, and best practices.",
			LongDescription: "Take your JavaScript skills to the next level with this advanced course. You'll explore complex topics like closures, prototypes, async patterns, and functional programming. This course is perfect for developers who want to truly master JavaScript and write more efficient, maintainable code.",
			Instructor: models.InstructorRef{
				ID:     "106",
				Name:   "James Rodriguez",
				Avatar: "https://randomuser.me/api/portraits/men/67.jpg",
			},
			Rating:       4.9,
			ReviewCount:  723,
			StudentCount: 5932,
			Duration:     "26 hours",
			Level:        models.LevelAdvanced,
			Price:        94.99,
			Image:        "https://images.unsplash.com/photo-1555066931-4365d14bab8c?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=1470&q=80",
			Category:     "Web Development",
			Tags:         []string{"JavaScript", "ES6", "Functional Programming", "Design Patterns"},
			AIEnhanced:   false,
			LastUpdated:  date("2023-10-10"),
			Language:     "English",
		},
		{
			ID:              "7",
			Title:           "Social Media Marketing Strategy",
			Slug:            "social-media-marketing-strategy",
			Description:     "Learn to create effective social media strategies for business growth.",
			LongDescription: "This course teaches you how to develop and implement successful social media marketing strategies. You'll learn platform-specific tactics for Facebook, Instagram, Twitter, LinkedIn, and TikTok, as well as how to create engaging content, grow your audience, and measure your results.",
			Instructor: models.InstructorRef{
				ID:     "107",
				Name:   "Sophia Martinez",
				Avatar: "https://randomuser.me/api/portraits/women/45.jpg",
			},
			Rating:       4.7,
			ReviewCount:  612,
			StudentCount: 4823,
			Duration:     "16 hours",
			Level:        models.LevelAllLevels,
			Price:        69.99,
			Image:        "https://images.unsplash.com/photo-1611162617213-7d7a39e9b1d7?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=1374&q=80",
			Category:     "Marketing",
			Tags:         []string{"Social Media", "Marketing Strategy", "Content Creation", "Community Building"},
			AIEnhanced:   true,
			LastUpdated:  date("2023-11-05"),
			Language:     "English",
		},
		{
			ID:              "8",
			Title:           "Mobile App Development with Flutter",
			Slug:            "mobile-app-development-with-flutter",
			Description:     "Build cross-platform mobile apps for iOS and Android with Flutter.",
			LongDescription: "Learn to create beautiful, high-performance mobile applications for both iOS and Android using Flutter. This course covers everything from Flutter basics to advanced state management and API integration. By the end, you'll be able to build and deploy complete mobile apps from scratch.",
			Instructor: models.InstructorRef{
				ID:     "108",
				Name:   "Ryan Chen",
				Avatar: "https://randomuser.me/api/portraits/men/15.jpg",
			},
			Rating:       4.8,
			ReviewCount:  578,
			StudentCount: 4215,
			Duration:     "30 hours",
			Level:        models.LevelIntermediate,
			Price:        89.99,
			Image:        "https://images.unsplash.com/photo-1551650975-87deedd944c3?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=1374&q=80",
			Category:     "Mobile Development",
			Tags:         []string{"Flutter", "Dart", "iOS", "Android", "Mobile Apps"},
			AIEnhanced:   true,
			LastUpdated:  date("2023-12-05"),
			Language:     "English",
		},
		{
			ID:              "9",
			Title:           "Financial Modeling and Valuation",
			Slug:            "financial-modeling-and-valuation",
			Description:     "Learn to build financial models and value companies like an investment banker.",
			LongDescription: "This comprehensive course teaches you how to build sophisticated financial models and perform company valuations using Excel. You'll learn industry-standard techniques used by investment bankers, equity research analysts, and finance professionals to analyze companies and make investment decisions.",
			Instructor: models.InstructorRef{
				ID:     "109",
				Name:   "Robert Johnson",
				Avatar: "https://randomuser.me/api/portraits/men/42.jpg",
			},
			Rating:       4.9,
			ReviewCount:  492,
			StudentCount: 3845,
			Duration:     "24 hours",
			Level:        models.LevelIntermediate,
			Price:        99.99,
			Image:        "https://images.unsplash.com/photo-1611974789855-9c2a0a7236a3?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=1470&q=80",
			Category:     "Finance",
			Tags:         []string{"Financial Modeling", "Valuation", "Excel", "Investment Banking"},
			AIEnhanced:   false,
			LastUpdated:  date("2023-08-20"),
			Language:     "English",
		},
		{
			ID:              "10",
			Title:           "Graphic Design Fundamentals",
			Slug:            "graphic-design-fundamentals",
			Description:     "Master the core principles of graphic design and visual communication.",
			LongDescription: "This course provides a solid foundation in graphic design principles and practices. You'll learn about typography, color theory, composition, and visual hierarchy. Through hands-on projects, you'll develop the skills to create effective visual designs for print and digital media.",
			Instructor: models.InstructorRef{
				ID:     "110",
				Name:   "Lisa Wong",
				Avatar: "https://randomuser.me/api/portraits/women/23.jpg",
			},
			Rating:       4.7,
			ReviewCount:  687,
			StudentCount: 5932,
			Duration:     "20 hours",
			Level:        models.LevelBeginner,
			Price:        74.99,
			Image:        "https://images.unsplash.com/photo-1626785774573-4b799315345d?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=1471&q=80",
			Category:     "Design",
			Tags:         []string{"Graphic Design", "Typography", "Color Theory", "Adobe Creative Suite"},
			AIEnhanced:   true,
			LastUpdated:  date("2023-09-28"),
			Language:     "English",
		},
		{
			ID:              "11",
			Title:           "Artificial Intelligence: Deep Learning",
			Slug:            "artificial-intelligence-deep-learning",
			Description:     "Master deep learning techniques and neural network architectures.",
			LongDescription: "This advanced course covers the theory and practice of deep learning. You'll learn about neural network architectures, convolutional and recurrent networks, generative models, and more. Through hands-on projects, you'll implement deep learning solutions for image recognition, natural language processing, and other AI applications.",
			Instructor: models.InstructorRef{
				ID:     "111",
				Name:   "Dr. Alan Zhang",
				Avatar: "https://randomuser.me/api/portraits/men/52.jpg",
			},
			Rating:       4.9,
			ReviewCount:  423,
			StudentCount: 3254,
			Duration:     "32 hours",
			Level:        models.LevelAdvanced,
			Price:        109.99,
			Image:        "https://images.unsplash.com/photo-1677442135136-760c813a743d?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=1632&q=80",
			Category:     "Data Science",
			Tags:         []string{"Deep Learning", "Neural Networks", "TensorFlow", "PyTorch", "AI"},
			AIEnhanced:   true,
			LastUpdated:  date("2023-11-15"),
			Language:     "English",
		},
		{
			ID:              "12",
			Title:           "Project Management Professional (PMP) Certification",
			Slug:            "project-management-professional-certification",
			Description:     "Complete preparation for the PMP certification exam.",
			LongDescription: "This comprehensive course prepares you for the Project Management Professional (PMP) certification exam. You'll learn all the knowledge areas and process groups in the PMBOK Guide, along with exam strategies and hundreds of practice questions. This course satisfies the 35 contact hours required for the PMP application.",
			Instructor: models.InstructorRef{
				ID:     "112",
				Name:   "Jennifer Adams",
				Avatar: "https://randomuser.me/api/portraits/women/33.jpg",
			},
			Rating:       4.8,
			ReviewCount:  912,
			StudentCount: 7845,
			Duration:     "35 hours",
			Level:        models.LevelIntermediate,
			Price:        119.99,
			Image:        "https://images.unsplash.com/photo-1572177812156-58036aae439c?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=1470&q=80",
			Category:     "Business",
			Tags:         []string{"Project Management", "PMP", "Certification", "PMBOK"},
			AIEnhanced:   false,
			LastUpdated:  date("2023-10-05"),
			Language:     "English",
		},
	}
}

// CreateDefaultData inserts the demo accounts and catalog if they don't
// exist. Used for the postgres driver; the memory repositories are
// constructed with the same data directly. Individual failures are
// collected so one bad row does not stop the rest.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default data (accounts and catalog)...")
	var finalErr error

	accounts, err := Accounts()
	if err != nil {
		lgr.Error().Err(err).Msg("Error preparing demo accounts")
		return err
	}
	for _, account := range accounts {
		exists, err := repos.Users.EmailExists(ctx, account.Email)
		if err != nil {
			lgr.Error().Err(err).Str("email", account.Email).Msg("Error checking demo account")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}
		if err := repos.Users.Create(ctx, account); err != nil && !errors.Is(err, apperrors.ErrDuplicateAccount) {
			lgr.Error().Err(err).Str("email", account.Email).Msg("Error creating demo account")
			finalErr = errors.Join(finalErr, err)
		}
	}

	courses := Courses()
	for i := range courses {
		course := courses[i]
		exists, err := repos.Courses.SlugExists(ctx, course.Slug)
		if err != nil {
			lgr.Error().Err(err).Str("slug", course.Slug).Msg("Error checking demo course")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}
		if err := repos.Courses.Create(ctx, &course); err != nil && !errors.Is(err, apperrors.ErrSlugAlreadyExists) {
			lgr.Error().Err(err).Str("slug", course.Slug).Msg("Error creating demo course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}
