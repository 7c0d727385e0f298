package seed

import (
	"os"
	"strings"

	"stillpoint/config"
	. "stillpoint/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

func stringPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}

// audioURL builds the audio file URL from the AUDIO_BASE_URL environment
// variable, or nil when no base is configured.
func audioURL(filename string) *string {
	base := os.Getenv("AUDIO_BASE_URL")
	if base == "" {
		return nil
	}
	if strings.HasSuffix(base, "/") {
		return stringPtr(base + filename)
	}
	return stringPtr(base + "/" + filename)
}

// Seed populates the starter catalog. It is a no-op when teachers already
// exist so repeated runs never duplicate rows.
func Seed(db *gorm.DB, config config.Config, log logger.Logger) error {
	log = log.Function("seed")
	log.Info("Seeding catalog data")

	var teacherCount int64
	if err := db.Model(&Teacher{}).Count(&teacherCount).Error; err != nil {
		return log.Err("failed to check for existing teachers", err)
	}
	if teacherCount > 0 {
		log.Info("Catalog already seeded, skipping")
		return nil
	}

	teachers := []Teacher{
		{
			Name:      "Sarah Chen",
			Bio:       "Sarah specializes in curating continuous ambient soundscapes for deep relaxation and distraction-free rest.",
			Specialty: "Ambient Soundscapes",
		},
		{
			Name:      "Marcus Williams",
			Bio:       "Marcus provides background sound to support breathing practice and rhythmic calm.",
			Specialty: "Breathwork Support",
		},
		{
			Name:      "Elena Rodriguez",
			Bio:       "Elena curates ambient meditation audio for self-directed practice and inner focus.",
			Specialty: "Pure Ambient Meditation",
		},
		{
			Name:      "James Park",
			Bio:       "James creates ambient soundscapes and music-only sessions designed for focus and relaxation.",
			Specialty: "Ambient Music",
		},
	}

	for i := range teachers {
		if err := db.Create(&teachers[i]).Error; err != nil {
			return log.Err("failed to seed teacher", err, "name", teachers[i].Name)
		}
	}

	sarah := teachers[0].ID
	marcus := teachers[1].ID
	elena := teachers[2].ID
	james := teachers[3].ID

	sessions := []Session{
		{
			Title:       "Morning Calm",
			Description: "Start your day with this gentle 10-minute ambient sound designed to set a peaceful tone.",
			Category:    CategoryMeditation,
			Duration:    10,
			AudioURL:    audioURL("morning-calm.mp3"),
			TeacherID:   intPtr(elena),
			IsFeatured:  true,
		},
		{
			Title:       "Deep Sleep Journey",
			Description: "Soothing sleep audio that helps you drift off naturally through ambient nature sounds.",
			Category:    CategorySleep,
			Duration:    30,
			AudioURL:    audioURL("deep-sleep-journey.mp3"),
			TeacherID:   intPtr(sarah),
			IsFeatured:  true,
		},
		{
			Title:       "Rhythmic Breath Support",
			Description: "Background audio to support breathing practice. On-screen pattern: Inhale 4 · Hold 4 · Exhale 4 · Hold 4.",
			Category:    CategoryBreathwork,
			Duration:    5,
			AudioURL:    audioURL("rhythmic-breath-support.mp3"),
			TeacherID:   intPtr(marcus),
			IsFeatured:  true,
		},
		{
			Title:       "Ocean Waves",
			Description: "Gentle ocean sounds to help you relax, focus, or drift off to sleep.",
			Category:    CategoryMusic,
			Duration:    20,
			AudioURL:    audioURL("ocean-waves.mp3"),
			TeacherID:   intPtr(james),
		},
		{
			Title:       "Rainforest Ambience",
			Description: "Immerse yourself in the peaceful sounds of a tropical rainforest.",
			Category:    CategoryMusic,
			Duration:    30,
			AudioURL:    audioURL("rainforest-ambience.mp3"),
			TeacherID:   intPtr(james),
			IsPremium:   true,
		},
		{
			Title:       "Evening Wind Down",
			Description: "A 20-minute calming background audio session to help you release the day's stress and prepare for rest.",
			Category:    CategoryMeditation,
			Duration:    20,
			AudioURL:    audioURL("evening-wind-down.mp3"),
			TeacherID:   intPtr(sarah),
		},
		{
			Title:       "Focus & Clarity",
			Description: "Ambient sound designed to sharpen your mind and improve concentration through distraction-free audio.",
			Category:    CategoryMeditation,
			Duration:    15,
			AudioURL:    audioURL("focus-clarity.mp3"),
			TeacherID:   intPtr(elena),
			IsPremium:   true,
			IsFeatured:  true,
		},
		{
			Title:       "Square Breath Audio",
			Description: "Background sound to support rhythmic breathing. On-screen pattern: Inhale, Hold, Exhale, Hold.",
			Category:    CategoryBreathwork,
			Duration:    10,
			AudioURL:    audioURL("square-breath-audio.mp3"),
			TeacherID:   intPtr(marcus),
		},
		{
			Title:       "Starlit Ambience",
			Description: "Continuous ambient sound that takes you on a journey through the cosmos for deep sleep.",
			Category:    CategorySleep,
			Duration:    25,
			AudioURL:    audioURL("starlit-ambience.mp3"),
			TeacherID:   intPtr(sarah),
			IsPremium:   true,
		},
		{
			Title:       "White Noise",
			Description: "Pure white noise to mask distractions and promote deep focus or sleep.",
			Category:    CategoryMusic,
			Duration:    60,
			AudioURL:    audioURL("white-noise.mp3"),
		},
	}

	for i := range sessions {
		if err := db.Create(&sessions[i]).Error; err != nil {
			return log.Err("failed to seed session", err, "title", sessions[i].Title)
		}
	}

	log.Info("Catalog seeded", "teachers", len(teachers), "sessions", len(sessions))
	return nil
}
