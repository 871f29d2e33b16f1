package resource

// defaultAchievements returns the built-in achievement table.
func defaultAchievements() []AchievementDef {
	return []AchievementDef{
		{
			ID:           "first_kiss",
			Name:         "Not a Simp Anymore",
			Description:  "Successfully kissed someone without paying for it",
			Category:     "romantic",
			Rarity:       "uncommon",
			TriggerEvent: "first_kiss_success",
			Effect:       ReputationEffect{Popularity: 15, Respect: 10, Fear: 0, Attractiveness: 20},
		},
		{
			ID:           "dating_popular_girl",
			Name:         "Enemy of the School",
			Description:  "Dating the most popular girl - now all the guys hate you",
			Category:     "romantic",
			Rarity:       "legendary",
			TriggerEvent: "dating_most_popular_girl",
			Effect:       ReputationEffect{Popularity: -30, Respect: 25, Fear: 15, Attractiveness: 40},
		},
		{
			ID:           "friendzoned_hard",
			Name:         "Professional Friend",
			Description:  "Been friendzoned by 5 different people",
			Category:     "romantic",
			Rarity:       "rare",
			TriggerEvent: "friendzoned_5_times",
			Effect:       ReputationEffect{Popularity: 10, Respect: -10, Fear: -5, Attractiveness: -20},
		},
		{
			ID:           "social_outcast",
			Name:         "Lunch Alone Champion",
			Description:  "Ate lunch alone for 2 weeks straight",
			Category:     "social",
			Rarity:       "uncommon",
			TriggerEvent: "lunch_alone_14_days",
			Effect:       ReputationEffect{Popularity: -20, Respect: -5, Fear: 0, Attractiveness: -10},
		},
		{
			ID:           "party_king",
			Name:         "The Life of Every Party",
			Description:  "Organized 3 successful parties this semester",
			Category:     "social",
			Rarity:       "rare",
			TriggerEvent: "organized_3_parties",
			Effect:       ReputationEffect{Popularity: 35, Respect: 15, Fear: 5, Attractiveness: 25},
		},
		{
			ID:           "gossip_master",
			Name:         "The School's TMZ",
			Description:  "Successfully spread 10 rumors that turned out to be true",
			Category:     "social",
			Rarity:       "rare",
			TriggerEvent: "spread_10_true_rumors",
			Effect:       ReputationEffect{Popularity: 20, Respect: -10, Fear: 15, Attractiveness: 5},
		},
		{
			ID:           "perfect_student",
			Name:         "Teacher's Pet Supreme",
			Description:  "Got perfect scores on 5 consecutive tests",
			Category:     "academic",
			Rarity:       "rare",
			TriggerEvent: "perfect_scores_5_tests",
			Effect:       ReputationEffect{Popularity: -5, Respect: 30, Fear: 0, Attractiveness: -5},
		},
		{
			ID:           "cheating_mastermind",
			Name:         "Academic Underground",
			Description:  "Successfully ran a cheating operation for a whole semester",
			Category:     "academic",
			Rarity:       "legendary",
			TriggerEvent: "cheating_operation_semester",
			Effect:       ReputationEffect{Popularity: 25, Respect: -15, Fear: 20, Attractiveness: 10},
		},
		{
			ID:           "sports_hero",
			Name:         "The School's Ace",
			Description:  "Won the championship for your sports club",
			Category:     "athletic",
			Rarity:       "legendary",
			TriggerEvent: "won_championship",
			Effect:       ReputationEffect{Popularity: 40, Respect: 35, Fear: 10, Attractiveness: 30},
		},
		{
			ID:           "gym_disaster",
			Name:         "Human Catastrophe",
			Description:  "Injured 3 people during gym class in one day",
			Category:     "athletic",
			Rarity:       "uncommon",
			TriggerEvent: "injured_3_people_gym",
			Effect:       ReputationEffect{Popularity: -15, Respect: -20, Fear: 10, Attractiveness: -15},
		},
		{
			ID:           "detention_king",
			Name:         "Detention Hall of Fame",
			Description:  "Spent more time in detention than in class this month",
			Category:     "rebel",
			Rarity:       "rare",
			TriggerEvent: "detention_more_than_class",
			Effect:       ReputationEffect{Popularity: 15, Respect: -25, Fear: 25, Attractiveness: 10},
		},
		{
			ID:           "rooftop_access",
			Name:         "Sky High Rebel",
			Description:  "Found a way to access the school rooftop",
			Category:     "rebel",
			Rarity:       "uncommon",
			TriggerEvent: "accessed_rooftop",
			Effect:       ReputationEffect{Popularity: 20, Respect: 5, Fear: 5, Attractiveness: 15},
		},
		{
			ID:           "student_president",
			Name:         "The People's Choice",
			Description:  "Won student council president election",
			Category:     "leadership",
			Rarity:       "legendary",
			TriggerEvent: "won_student_president",
			Effect:       ReputationEffect{Popularity: 50, Respect: 40, Fear: 0, Attractiveness: 20},
		},
		{
			ID:           "club_destroyer",
			Name:         "The Club Killer",
			Description:  "Single-handedly caused 2 clubs to disband",
			Category:     "leadership",
			Rarity:       "rare",
			TriggerEvent: "disbanded_2_clubs",
			Effect:       ReputationEffect{Popularity: -30, Respect: -20, Fear: 30, Attractiveness: -10},
		},
	}
}

// defaultLocations returns the built-in school map.
func defaultLocations() []LocationDef {
	return []LocationDef{
		{
			ID:                 "entrance",
			Name:               "Fukimori High School Main Entrance",
			Type:               "entrance",
			Description:        "Grand entrance with traditional architecture mixed with modern elements. Cherry blossom trees line the pathway.",
			Atmosphere:         "welcoming yet dignified",
			KeyFeatures:        []string{"bronze school nameplate", "cherry blossom trees", "stone pathway", "traditional gates", "school bulletin board"},
			ConnectedLocations: []string{"main_hallway", "courtyard", "parking_area"},
			TypicalActivities:  []string{"morning arrivals", "afternoon departures", "parent meetings", "school events entrance"},
		},
		{
			ID:                 "main_hallway",
			Name:               "Main Hallway",
			Type:               "hallway",
			Description:        "Wide, well-lit hallway with polished floors and trophy cases displaying school achievements.",
			Atmosphere:         "busy and energetic during class changes, quiet during lessons",
			KeyFeatures:        []string{"trophy cases", "school achievement displays", "student artwork", "notice boards", "shoe lockers"},
			ConnectedLocations: []string{"entrance", "classroom_1a", "classroom_1b", "classroom_1c", "faculty_room", "stairs_to_2f"},
			TypicalActivities:  []string{"class changes", "student conversations", "announcement viewing", "trophy admiring"},
		},
		{
			ID:                 "classroom_1a",
			Name:               "Classroom 1-A",
			Type:               "classroom",
			Description:        "Standard classroom with rows of desks facing a blackboard. Windows overlook the school courtyard.",
			Atmosphere:         "studious and focused, warm afternoon sunlight",
			KeyFeatures:        []string{"blackboard", "teacher's desk", "student desks in rows", "windows with courtyard view", "class schedule", "cleaning supplies"},
			ConnectedLocations: []string{"main_hallway"},
			TypicalActivities:  []string{"math lessons", "homeroom", "study periods", "class meetings", "after-school tutoring"},
		},
		{
			ID:                 "cafeteria",
			Name:               "School Cafeteria",
			Type:               "dining",
			Description:        "Large dining hall with long tables and benches. Serving area offers traditional Japanese school meals.",
			Atmosphere:         "lively and social during lunch, echoing when empty",
			KeyFeatures:        []string{"serving counter", "long dining tables", "vending machines", "menu board", "large windows"},
			ConnectedLocations: []string{"main_hallway", "kitchen", "courtyard"},
			TypicalActivities:  []string{"lunch time", "social gatherings", "club meetings over meals", "food committee meetings"},
		},
		{
			ID:                 "library",
			Name:               "Fukimori High Library",
			Type:               "academic",
			Description:        "Quiet, well-organized library with tall bookshelves and study tables. Computer stations for research.",
			Atmosphere:         "peaceful and scholarly, perfect for concentration",
			KeyFeatures:        []string{"tall bookshelves", "reading tables", "computer stations", "librarian's desk", "study carrels", "magazine section"},
			ConnectedLocations: []string{"main_hallway", "computer_lab"},
			TypicalActivities:  []string{"studying", "research", "reading", "quiet conversations", "book club meetings"},
		},
		{
			ID:                 "gymnasium",
			Name:               "School Gymnasium",
			Type:               "athletic",
			Description:        "Large indoor gymnasium with basketball courts, volleyball nets, and athletic equipment storage.",
			Atmosphere:         "energetic and echoing, smells of athletic equipment",
			KeyFeatures:        []string{"basketball hoops", "volleyball nets", "athletic equipment storage", "bleachers", "scoreboard"},
			ConnectedLocations: []string{"main_hallway", "locker_rooms", "equipment_storage"},
			TypicalActivities:  []string{"PE classes", "basketball practice", "volleyball practice", "school assemblies", "sports events"},
		},
		{
			ID:                 "courtyard",
			Name:               "Central Courtyard",
			Type:               "outdoor",
			Description:        "Beautiful central courtyard with benches, trees, and a small garden. Popular spot for lunch and relaxation.",
			Atmosphere:         "peaceful and natural, changes with seasons",
			KeyFeatures:        []string{"wooden benches", "large trees", "flower garden", "stone pathways", "water fountain"},
			ConnectedLocations: []string{"entrance", "cafeteria", "main_hallway", "club_building"},
			TypicalActivities:  []string{"outdoor lunch", "relaxation", "studying outdoors", "club activities", "seasonal festivals"},
		},
		{
			ID:                 "rooftop",
			Name:               "School Rooftop",
			Type:               "outdoor",
			Description:        "Accessible rooftop with safety railings and benches. Offers panoramic view of Fukimori City.",
			Atmosphere:         "open and windy, peaceful with city views",
			KeyFeatures:        []string{"safety railings", "benches", "city panorama view", "water tanks", "antenna equipment"},
			ConnectedLocations: []string{"stairs_to_3f"},
			TypicalActivities:  []string{"quiet contemplation", "private conversations", "lunch breaks", "sunset viewing", "confession scenes"},
		},
		{
			ID:                 "music_room",
			Name:               "Music Room",
			Type:               "creative",
			Description:        "Soundproofed room with various musical instruments, piano, and music stands.",
			Atmosphere:         "creative and inspiring, acoustically optimized",
			KeyFeatures:        []string{"grand piano", "music stands", "various instruments", "sound equipment", "music sheets storage"},
			ConnectedLocations: []string{"main_hallway"},
			TypicalActivities:  []string{"music classes", "choir practice", "band practice", "individual practice", "music club meetings"},
		},
		{
			ID:                 "science_lab",
			Name:               "Science Laboratory",
			Type:               "academic",
			Description:        "Well-equipped laboratory with experiment tables, chemical storage, and safety equipment.",
			Atmosphere:         "clinical and precise, slight chemical smell",
			KeyFeatures:        []string{"experiment tables", "chemical storage cabinets", "microscopes", "safety equipment", "periodic table chart"},
			ConnectedLocations: []string{"main_hallway", "preparation_room"},
			TypicalActivities:  []string{"science experiments", "chemistry classes", "biology dissections", "science club activities"},
		},
		{
			ID:                 "faculty_room",
			Name:               "Faculty Room",
			Type:               "administrative",
			Description:        "Teachers' workspace with desks, filing cabinets, and a small kitchen area for staff.",
			Atmosphere:         "professional and busy, coffee aroma",
			KeyFeatures:        []string{"teacher desks", "filing cabinets", "copy machine", "small kitchen", "meeting table", "bulletin board"},
			ConnectedLocations: []string{"main_hallway", "principal_office"},
			TypicalActivities:  []string{"lesson planning", "grading", "teacher meetings", "coffee breaks", "student consultations"},
		},
		{
			ID:                 "principal_office",
			Name:               "Principal's Office",
			Type:               "administrative",
			Description:        "Formal office with traditional Japanese elements, awards, and a large desk overlooking the courtyard.",
			Atmosphere:         "formal and dignified, inspiring respect",
			KeyFeatures:        []string{"large wooden desk", "awards and certificates", "traditional decorations", "bookshelf", "tea set"},
			ConnectedLocations: []string{"faculty_room", "main_hallway"},
			TypicalActivities:  []string{"disciplinary meetings", "parent conferences", "administrative work", "student counseling"},
		},
		{
			ID:                 "health_office",
			Name:               "Health Office",
			Type:               "medical",
			Description:        "Clean, white room with medical equipment, examination bed, and medicine cabinet.",
			Atmosphere:         "sterile and calming, reassuring presence",
			KeyFeatures:        []string{"examination bed", "medical equipment", "medicine cabinet", "health records", "privacy screen"},
			ConnectedLocations: []string{"main_hallway"},
			TypicalActivities:  []string{"health checkups", "injury treatment", "medication dispensing", "health consultations", "rest periods"},
		},
		{
			ID:                 "club_building",
			Name:               "Club Activities Building",
			Type:               "extracurricular",
			Description:        "Separate building housing various club rooms for different student activities.",
			Atmosphere:         "creative and energetic, sounds of various activities",
			KeyFeatures:        []string{"multiple club rooms", "storage areas", "bulletin boards", "activity equipment"},
			ConnectedLocations: []string{"courtyard", "art_room", "drama_room", "computer_club"},
			TypicalActivities:  []string{"club meetings", "project work", "skill development", "competitions preparation"},
		},
		{
			ID:                 "art_room",
			Name:               "Art Room",
			Type:               "creative",
			Description:        "Bright room with easels, art supplies, and natural lighting perfect for artistic creation.",
			Atmosphere:         "inspiring and messy, paint and creativity in the air",
			KeyFeatures:        []string{"easels", "art supply storage", "large windows", "student artwork displays", "pottery wheel"},
			ConnectedLocations: []string{"club_building"},
			TypicalActivities:  []string{"art classes", "painting", "pottery", "art club meetings", "exhibition preparation"},
		},
		{
			ID:                 "drama_room",
			Name:               "Drama Room",
			Type:               "creative",
			Description:        "Flexible space with mirrors, costume storage, and a small stage area for theatrical activities.",
			Atmosphere:         "dramatic and expressive, echoing with performances",
			KeyFeatures:        []string{"mirrors", "small stage", "costume storage", "lighting equipment", "script library"},
			ConnectedLocations: []string{"club_building"},
			TypicalActivities:  []string{"drama practice", "acting classes", "costume fittings", "script readings", "performance preparation"},
		},
		{
			ID:                 "student_council",
			Name:               "Student Council Room",
			Type:               "administrative",
			Description:        "Meeting room for student government with conference table and school planning materials.",
			Atmosphere:         "serious and organized, leadership energy",
			KeyFeatures:        []string{"conference table", "planning boards", "filing system", "school calendars", "voting box"},
			ConnectedLocations: []string{"main_hallway"},
			TypicalActivities:  []string{"student council meetings", "event planning", "policy discussions", "leadership activities"},
		},
	}
}

// defaultPresenceRules returns the built-in presence table. The empty-tag
// rule is the fallback for characters matching no other rule. The "athletic"
// tag is synthesized for characters with at least one sport.
func defaultPresenceRules() []PresenceRule {
	return []PresenceRule{
		{Tag: "teacher", Locations: []string{"faculty_room", "classroom_1a", "library", "science_lab"}},
		{Tag: "student", Locations: []string{"cafeteria", "courtyard", "library", "club_building"}},
		{Tag: "athletic", Locations: []string{"gymnasium", "courtyard"}},
		{Tag: "", Locations: []string{"courtyard", "cafeteria", "main_hallway"}},
	}
}

// defaultSkills returns the starting skill table for a new world. Academic
// and basic athletic skills start unlocked; the rest unlock through level-up
// rewards or direct purchase.
func defaultSkills() []SkillSeed {
	return []SkillSeed{
		{Name: "mathematics", Unlocked: true},
		{Name: "literature", Unlocked: true},
		{Name: "science", Unlocked: true},
		{Name: "history", Unlocked: true},
		{Name: "athletics", Unlocked: true},
		{Name: "persuasion", Unlocked: false},
		{Name: "intimidation", Unlocked: false},
		{Name: "diplomacy", Unlocked: false},
		{Name: "comedy", Unlocked: false},
		{Name: "martial_arts", Unlocked: false},
		{Name: "dancing", Unlocked: false},
		{Name: "art", Unlocked: false},
		{Name: "music", Unlocked: false},
		{Name: "writing", Unlocked: false},
		{Name: "photography", Unlocked: false},
		{Name: "supernatural_control", Unlocked: false},
		{Name: "meditation", Unlocked: false},
		{Name: "investigation", Unlocked: false},
	}
}
