package resource

import "github.com/fukimorihigh/server/model"

// defaultStaff returns the five teachers and staff members seeded into
// every new world.
func defaultStaff() []StaffSeed {
	return []StaffSeed{
		{
			CharID: "teacher_tanaka",
			Name:   "Hiroshi Tanaka",
			Age:    42,
			Gender: "male",
			Appearance: model.Appearance{
				HairColor:           "black with gray streaks",
				HairStyle:           "neat, professional cut",
				EyeColor:            "brown",
				Height:              "average",
				BodyType:            "slightly overweight",
				DistinctiveFeatures: []string{"glasses", "gentle smile"},
				Outfits: model.Outfits{
					SchoolUniform:  "professional navy suit with Fukimori High School badge",
					CasualWear:     []string{"polo shirts and khakis"},
					SpecialOutfits: []string{"formal ceremony attire"},
					Accessories:    []string{"wire-rim glasses", "calculator watch"},
				},
				PhysicalMarks: []string{"small scar on left hand from a lab accident years ago"},
			},
			Personality: model.Personality{
				Traits:           []string{"patient", "methodical", "encouraging", "slightly strict"},
				Likes:            []string{"mathematics puzzles", "teaching moments", "coffee", "organized classrooms"},
				Dislikes:         []string{"students not paying attention", "messy work", "being late"},
				Fears:            []string{"students failing because of his teaching", "technology breaking down"},
				Goals:            []string{"help every student understand math", "modernize teaching methods"},
				SpeechPattern:    "formal but warm, uses math analogies",
				CoreValues:       []string{"education", "patience", "fairness"},
				BehaviorPatterns: []string{"always arrives 15 minutes early", "double-checks calculations"},
				SocialStyle:      "professional but approachable",
			},
			Background: model.Background{
				Family: model.Family{
					Father:           model.Parent{Name: "Kenji Tanaka", Occupation: "retired engineer", Personality: "methodical"},
					Mother:           model.Parent{Name: "Yuki Tanaka", Occupation: "librarian", Personality: "nurturing"},
					Siblings:         []model.Sibling{{Name: "Akiko Tanaka-Sato", Age: 38, Relationship: "younger sister, also a teacher"}},
					FamilyWealth:     "upper middle class",
					FamilyReputation: "respected educators",
				},
				HomeAddress:     "4-12-8 Sakura District, Fukimori City",
				RoomDescription: "home office filled with math textbooks and teaching materials",
				EconomicStatus:  "comfortable middle class",
				Backstory:       "Former engineer who became passionate about teaching after tutoring his niece. Has been at Fukimori High for 8 years.",
				Secrets:         []string{"sometimes doubts his teaching abilities", "writes math poetry in his spare time"},
				PastTrauma:      "lost a promising student to a car accident 3 years ago",
			},
			Abilities: model.Abilities{
				Academic: model.AcademicAbility{Subjects: []string{"Mathematics", "Physics", "Statistics"}, AverageGrade: "Expert", StudyHabits: "constantly learning new teaching methods"},
				Athletic: model.AthleticAbility{Sports: []string{}, PhysicalStrength: 4, Endurance: 3},
				Artistic: model.ArtisticAbility{Talents: []string{"mathematical art", "calligraphy"}, SkillLevel: "intermediate"},
				Social:   model.SocialAbility{Reputation: 85, PopularityLevel: "well-respected", SocialCircle: []string{"fellow teachers", "math club advisors"}},
			},
			DailyRoutine: model.DailyRoutine{
				Morning:     "arrives early to prepare lessons and help struggling students",
				Lunch:       "eats in the faculty room while grading papers",
				AfterSchool: "runs Math Club and provides tutoring",
				Weekend:     "grades papers, prepares lessons, visits family",
			},
			ReputationTags: []string{"strict but fair", "math genius", "student favorite"},
		},
		{
			CharID: "teacher_anderson",
			Name:   "Sarah Anderson",
			Age:    29,
			Gender: "female",
			Appearance: model.Appearance{
				HairColor:           "auburn",
				HairStyle:           "shoulder-length with gentle waves",
				EyeColor:            "green",
				Height:              "tall",
				BodyType:            "slim",
				DistinctiveFeatures: []string{"bright smile", "expressive eyes"},
				Outfits: model.Outfits{
					SchoolUniform:  "elegant blouses with cardigans and professional skirts",
					CasualWear:     []string{"flowing dresses", "artistic scarves"},
					SpecialOutfits: []string{"vintage-inspired formal wear"},
					Accessories:    []string{"delicate jewelry", "reading glasses on a chain"},
				},
				PhysicalMarks: []string{"small beauty mark near left eye"},
			},
			Personality: model.Personality{
				Traits:           []string{"creative", "enthusiastic", "empathetic", "inspiring"},
				Likes:            []string{"literature", "creative writing", "theater", "international culture"},
				Dislikes:         []string{"standardized testing", "closed-minded thinking", "plagiarism"},
				Fears:            []string{"stifling student creativity", "losing passion for teaching"},
				Goals:            []string{"inspire students to love reading", "start a school literary magazine"},
				SpeechPattern:    "animated and descriptive, uses literary references",
				CoreValues:       []string{"creativity", "self-expression", "cultural understanding"},
				BehaviorPatterns: []string{"quotes literature in daily conversation", "encourages student voice"},
				SocialStyle:      "warm and engaging",
			},
			Background: model.Background{
				Family: model.Family{
					Father:           model.Parent{Name: "Robert Anderson", Occupation: "university professor", Personality: "intellectual"},
					Mother:           model.Parent{Name: "Margaret Anderson", Occupation: "novelist", Personality: "creative"},
					Siblings:         []model.Sibling{{Name: "James Anderson", Age: 32, Relationship: "older brother, journalist"}},
					FamilyWealth:     "upper middle class",
					FamilyReputation: "literary family",
				},
				HomeAddress:     "2-7-15 Arts District, Fukimori City",
				RoomDescription: "cozy apartment filled with books, plants, and art",
				EconomicStatus:  "comfortable middle class",
				Backstory:       "Moved to Japan after college to experience different cultures. Fell in love with teaching and decided to stay.",
				Secrets:         []string{"writes romance novels under a pen name", "once considered dropping teaching for writing"},
				PastTrauma:      "dealt with imposter syndrome as a young foreign teacher",
			},
			Abilities: model.Abilities{
				Academic: model.AcademicAbility{Subjects: []string{"English Literature", "Creative Writing", "Japanese Culture"}, AverageGrade: "Expert", StudyHabits: "voracious reader and writer"},
				Athletic: model.AthleticAbility{Sports: []string{"yoga"}, PhysicalStrength: 3, Endurance: 5},
				Artistic: model.ArtisticAbility{Talents: []string{"writing", "poetry", "drama direction"}, SkillLevel: "expert"},
				Social:   model.SocialAbility{Reputation: 90, PopularityLevel: "very popular", SocialCircle: []string{"international community", "literary circles"}},
			},
			DailyRoutine: model.DailyRoutine{
				Morning:     "reads poetry while drinking tea before school",
				Lunch:       "discusses books with students and colleagues",
				AfterSchool: "runs Drama Club and Writing Workshop",
				Weekend:     "visits bookstores, writes, explores Japanese culture",
			},
			ReputationTags: []string{"inspiring teacher", "cultural bridge", "creative mentor"},
		},
		{
			CharID: "principal_yoshida",
			Name:   "Masaki Yoshida",
			Age:    55,
			Gender: "male",
			Appearance: model.Appearance{
				HairColor:           "gray",
				HairStyle:           "neat, traditional cut",
				EyeColor:            "dark brown",
				Height:              "average",
				BodyType:            "stocky",
				DistinctiveFeatures: []string{"commanding presence", "kind eyes"},
				Outfits: model.Outfits{
					SchoolUniform:  "formal dark suits with school badge",
					CasualWear:     []string{"traditional Japanese clothing on weekends"},
					SpecialOutfits: []string{"ceremonial formal wear for school events"},
					Accessories:    []string{"school badge pin", "traditional watch"},
				},
				PhysicalMarks: []string{},
			},
			Personality: model.Personality{
				Traits:           []string{"wise", "firm but fair", "traditional", "protective of students"},
				Likes:            []string{"school traditions", "student achievements", "tea ceremony", "classical music"},
				Dislikes:         []string{"disrespect", "violence", "students giving up on themselves"},
				Fears:            []string{"failing the students and community", "losing school traditions"},
				Goals:            []string{"maintain Fukimori High's excellent reputation", "support every student's success"},
				SpeechPattern:    "formal and measured, speaks with authority but warmth",
				CoreValues:       []string{"honor", "tradition", "educational excellence"},
				BehaviorPatterns: []string{"walks the halls daily", "knows every student by name"},
				SocialStyle:      "dignified but approachable",
			},
			Background: model.Background{
				Family: model.Family{
					Father:           model.Parent{Name: "Takeshi Yoshida", Occupation: "former school principal (deceased)", Personality: "strict disciplinarian"},
					Mother:           model.Parent{Name: "Haruko Yoshida", Occupation: "tea ceremony instructor", Personality: "graceful"},
					Siblings:         []model.Sibling{},
					FamilyWealth:     "middle class",
					FamilyReputation: "respected educators",
				},
				HomeAddress:     "1-3-22 Traditional District, Fukimori City",
				RoomDescription: "traditional Japanese home with study full of educational philosophy books",
				EconomicStatus:  "comfortable middle class",
				Backstory:       "Third-generation educator. Started as a history teacher, became vice principal, then principal. Dedicated his life to Fukimori High.",
				Secrets:         []string{"sometimes feels overwhelmed by modern educational challenges", "practices calligraphy to relax"},
				PastTrauma:      "witnessed the school struggle during economic hardship 10 years ago",
			},
			Abilities: model.Abilities{
				Academic: model.AcademicAbility{Subjects: []string{"History", "Educational Administration", "Traditional Arts"}, AverageGrade: "Expert", StudyHabits: "studies educational policy and history"},
				Athletic: model.AthleticAbility{Sports: []string{"kendo"}, PhysicalStrength: 6, Endurance: 5},
				Artistic: model.ArtisticAbility{Talents: []string{"calligraphy", "tea ceremony"}, SkillLevel: "expert"},
				Social:   model.SocialAbility{Reputation: 95, PopularityLevel: "highly respected", SocialCircle: []string{"educational community", "traditional arts practitioners"}},
			},
			DailyRoutine: model.DailyRoutine{
				Morning:     "arrives first, reviews school operations",
				Lunch:       "eats with different classes on rotation",
				AfterSchool: "meets with teachers and handles administrative duties",
				Weekend:     "attends community events and practices traditional arts",
			},
			ReputationTags: []string{"respected leader", "tradition keeper", "student advocate"},
		},
		{
			CharID: "nurse_kimura",
			Name:   "Yuki Kimura",
			Age:    36,
			Gender: "female",
			Appearance: model.Appearance{
				HairColor:           "dark brown",
				HairStyle:           "practical bob cut",
				EyeColor:            "dark brown",
				Height:              "short",
				BodyType:            "petite",
				DistinctiveFeatures: []string{"gentle hands", "caring expression"},
				Outfits: model.Outfits{
					SchoolUniform:  "clean white nurse uniform with comfortable shoes",
					CasualWear:     []string{"soft sweaters and comfortable pants"},
					SpecialOutfits: []string{"medical conference attire"},
					Accessories:    []string{"stethoscope", "watch with large numbers", "small medical bag"},
				},
				PhysicalMarks: []string{"vaccination scar on upper arm"},
			},
			Personality: model.Personality{
				Traits:           []string{"nurturing", "observant", "calm under pressure", "intuitive"},
				Likes:            []string{"helping students", "herbal medicine", "quiet moments", "student recovery stories"},
				Dislikes:         []string{"students hiding injuries", "being rushed", "seeing pain"},
				Fears:            []string{"missing a serious condition", "students not trusting her"},
				Goals:            []string{"keep all students healthy", "promote wellness education"},
				SpeechPattern:    "soft and reassuring, asks gentle probing questions",
				CoreValues:       []string{"health", "caring", "confidentiality"},
				BehaviorPatterns: []string{"notices changes in student behavior", "keeps detailed health records"},
				SocialStyle:      "quiet but deeply caring",
			},
			Background: model.Background{
				Family: model.Family{
					Father:           model.Parent{Name: "Taro Kimura", Occupation: "doctor", Personality: "dedicated healer"},
					Mother:           model.Parent{Name: "Sachiko Kimura", Occupation: "herbalist", Personality: "gentle wisdom"},
					Siblings:         []model.Sibling{{Name: "Kenji Kimura", Age: 40, Relationship: "older brother, pediatrician"}},
					FamilyWealth:     "upper middle class",
					FamilyReputation: "healing family",
				},
				HomeAddress:     "3-8-14 Medical District, Fukimori City",
				RoomDescription: "peaceful room with medical references and healing plants",
				EconomicStatus:  "comfortable middle class",
				Backstory:       "Former hospital nurse who chose school nursing to focus on preventive care and adolescent health.",
				Secrets:         []string{"studies alternative healing methods", "keeps a journal of student health patterns"},
				PastTrauma:      "lost a young patient during her hospital days",
			},
			Abilities: model.Abilities{
				Academic: model.AcademicAbility{Subjects: []string{"Health Science", "Psychology", "Nutrition"}, AverageGrade: "Expert", StudyHabits: "constantly updates medical knowledge"},
				Athletic: model.AthleticAbility{Sports: []string{"walking", "yoga"}, PhysicalStrength: 3, Endurance: 6},
				Artistic: model.ArtisticAbility{Talents: []string{"botanical illustration", "meditation"}, SkillLevel: "intermediate"},
				Social:   model.SocialAbility{Reputation: 88, PopularityLevel: "trusted confidante", SocialCircle: []string{"medical professionals", "health advocates"}},
			},
			DailyRoutine: model.DailyRoutine{
				Morning:     "prepares health office and reviews student medical files",
				Lunch:       "available for student consultations",
				AfterSchool: "updates health records and contacts parents when needed",
				Weekend:     "studies herbal medicine and visits family",
			},
			ReputationTags: []string{"healing hands", "student confidante", "health advocate"},
		},
		{
			CharID: "coach_saito",
			Name:   "Takuya Saito",
			Age:    34,
			Gender: "male",
			Appearance: model.Appearance{
				HairColor:           "black",
				HairStyle:           "short athletic cut",
				EyeColor:            "dark brown",
				Height:              "tall",
				BodyType:            "muscular",
				DistinctiveFeatures: []string{"strong jawline", "energetic posture"},
				Outfits: model.Outfits{
					SchoolUniform:  "Fukimori High PE tracksuit and athletic shoes",
					CasualWear:     []string{"sports wear and athletic gear"},
					SpecialOutfits: []string{"formal coaching attire for competitions"},
					Accessories:    []string{"whistle on lanyard", "stopwatch", "clipboard"},
				},
				PhysicalMarks: []string{"old knee surgery scar", "various small sports-related scars"},
			},
			Personality: model.Personality{
				Traits:           []string{"energetic", "motivational", "competitive", "protective of students"},
				Likes:            []string{"student improvement", "team sports", "healthy competition", "outdoor activities"},
				Dislikes:         []string{"students giving up", "poor sportsmanship", "laziness"},
				Fears:            []string{"student injuries", "losing team spirit"},
				Goals:            []string{"develop student athletic potential", "teach life lessons through sports"},
				SpeechPattern:    "loud and encouraging, uses sports metaphors",
				CoreValues:       []string{"teamwork", "perseverance", "healthy lifestyle"},
				BehaviorPatterns: []string{"demonstrates exercises personally", "celebrates student achievements"},
				SocialStyle:      "boisterous but caring",
			},
			Background: model.Background{
				Family: model.Family{
					Father:           model.Parent{Name: "Hiroshi Saito", Occupation: "former professional baseball player", Personality: "competitive"},
					Mother:           model.Parent{Name: "Emi Saito", Occupation: "nutritionist", Personality: "health-focused"},
					Siblings:         []model.Sibling{{Name: "Rika Saito-Tanaka", Age: 31, Relationship: "younger sister, sports therapist"}},
					FamilyWealth:     "middle class",
					FamilyReputation: "athletic family",
				},
				HomeAddress:     "5-2-9 Sports Complex Area, Fukimori City",
				RoomDescription: "home gym with sports memorabilia and training equipment",
				EconomicStatus:  "middle class",
				Backstory:       "Former semi-professional athlete whose career ended due to knee injury. Found new purpose in teaching and coaching.",
				Secrets:         []string{"still struggles with his athletic career ending", "studies sports psychology"},
				PastTrauma:      "career-ending knee injury at age 26",
			},
			Abilities: model.Abilities{
				Academic: model.AcademicAbility{Subjects: []string{"Physical Education", "Sports Science", "Health"}, AverageGrade: "Expert", StudyHabits: "studies sports methodology and injury prevention"},
				Athletic: model.AthleticAbility{Sports: []string{"baseball", "basketball", "track and field"}, PhysicalStrength: 9, Endurance: 8},
				Artistic: model.ArtisticAbility{Talents: []string{"sports photography"}, SkillLevel: "beginner"},
				Social:   model.SocialAbility{Reputation: 82, PopularityLevel: "popular with athletic students", SocialCircle: []string{"sports community", "fellow coaches"}},
			},
			DailyRoutine: model.DailyRoutine{
				Morning:     "sets up sports equipment and reviews training plans",
				Lunch:       "often eats with sports team members",
				AfterSchool: "coaches various sports teams and supervises training",
				Weekend:     "attends sports events and trains with local athletic clubs",
			},
			ReputationTags: []string{"motivational coach", "athletic mentor", "team builder"},
		},
	}
}
