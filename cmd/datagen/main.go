// Command datagen emits a synthetic dataset document for demo sessions.
// The output is compatible with the insiderwatch dataset file mode.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"insiderwatch/internal/dataset"
	"insiderwatch/pkg/models"
)

var (
	eventTypes = []string{
		"Mass Download",
		"Off-hours Login",
		"Privilege Escalation",
		"Suspicious File Access",
		"Multiple Failed Logins",
		"Unusual Data Upload",
	}
	detectionMethods = []string{"Isolation Forest", "Autoencoder", "XGBoost", "Baseline"}
	severityLabels   = []string{"low", "medium", "high", "critical"}
)

func main() {
	var (
		users  int
		alerts int
		seed   uint64
		out    string
	)
	flag.IntVar(&users, "users", 6, "number of user profiles to generate")
	flag.IntVar(&alerts, "alerts", 8, "number of alert records to generate")
	flag.Uint64Var(&seed, "seed", 0, "faker seed (0 = random)")
	flag.StringVar(&out, "out", "dataset.yml", "output path")
	flag.Parse()

	faker := gofakeit.New(seed)
	day := time.Date(2025, 9, 17, 0, 0, 0, 0, time.UTC)

	doc := &dataset.Document{}

	names := make([]string, 0, users)
	for i := 0; i < users; i++ {
		names = append(names, faker.Username())
	}

	for _, name := range names {
		profile := dataset.Profile{
			User:          name,
			Logins:        faker.Number(1, 20),
			FilesAccessed: faker.Number(5, 60),
			LastActive:    randomTime(faker, day).Format(models.TimeDisplay),
			Activity:      activitySeries(faker),
		}
		for i := 0; i < faker.Number(0, 3); i++ {
			profile.Anomalies = append(profile.Anomalies, dataset.Record{
				ID:       uuid.NewString(),
				Event:    faker.RandomString(eventTypes),
				Severity: faker.RandomString(severityLabels),
				Method:   faker.RandomString(detectionMethods),
				Time:     randomTime(faker, day).Format(models.TimeDisplay),
				Details:  faker.Sentence(8),
			})
		}
		doc.Profiles = append(doc.Profiles, profile)
	}

	for i := 0; i < alerts; i++ {
		doc.Alerts = append(doc.Alerts, dataset.Record{
			ID:      uuid.NewString(),
			User:    faker.RandomString(names),
			Event:   faker.RandomString(eventTypes),
			Risk:    faker.Number(40, 100),
			Method:  faker.RandomString(detectionMethods),
			Time:    randomTime(faker, day).Format(models.TimeDisplay),
			Details: faker.Sentence(8),
			IsNew:   faker.Bool(),
		})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal dataset: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", out, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s: %d alerts, %d profiles\n", out, len(doc.Alerts), len(doc.Profiles))
}

func randomTime(faker *gofakeit.Faker, day time.Time) time.Time {
	return day.Add(time.Duration(faker.Number(0, 24*60-1)) * time.Minute)
}

func activitySeries(faker *gofakeit.Faker) []float64 {
	series := make([]float64, 5)
	for i := range series {
		series[i] = float64(faker.Number(1, 20))
	}
	return series
}
