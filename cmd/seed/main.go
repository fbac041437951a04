package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/joho/godotenv"

	"creativestyle/config"
	"creativestyle/internal/app"
	"creativestyle/internal/logger"
	"creativestyle/internal/model"
)

// Seeds demo respondents through the same services the API uses.
func main() {
	count := flag.Int("n", 8, "number of demo submissions to create")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for answers")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("startup failed", "error", err)
	}
	defer a.Close(ctx)
	if cfg.Store.Driver == "memory" {
		log.Warn("seeding the memory store, data is discarded on exit")
	}

	rng := rand.New(rand.NewSource(*seed))
	scale := a.Catalog.Scale
	note := "I like to sketch a few rough versions before settling on one."

	for i := 0; i < *count; i++ {
		sub, err := a.SubmissionService.Start(ctx, model.StartRequest{
			Name:  fmt.Sprintf("Demo Respondent %d", i+1),
			Email: fmt.Sprintf("demo%d@example.com", i+1),
		})
		if err != nil {
			log.Fatal("start submission", "error", err)
		}

		// each respondent leans toward one end of the scale per dimension
		lean := map[model.Dimension]int{
			model.DimensionLearning:    rng.Intn(3) - 1,
			model.DimensionApplication: rng.Intn(3) - 1,
		}
		for _, q := range a.Catalog.ScaleQuestions {
			v := scale.Center + lean[q.Dimension()]*rng.Intn(scale.Max-scale.Center+1) + rng.Intn(3) - 1
			v = max(scale.Min, min(scale.Max, v))
			if err := a.SubmissionService.SubmitResponse(ctx, model.SubmitResponseRequest{
				SubmissionID:    sub.ID,
				QuestionID:      q.ID,
				NumericResponse: &v,
			}); err != nil {
				log.Fatal("submit response", "question_id", q.ID, "error", err)
			}
		}
		for _, q := range a.Catalog.TextQuestions {
			if err := a.SubmissionService.SubmitResponse(ctx, model.SubmitResponseRequest{
				SubmissionID: sub.ID,
				QuestionID:   q.ID,
				TextResponse: &note,
			}); err != nil {
				log.Fatal("submit response", "question_id", q.ID, "error", err)
			}
		}

		if err := a.SubmissionService.Complete(ctx, sub.ID); err != nil {
			log.Fatal("complete submission", "error", err)
		}
		res, err := a.ResultService.GetResults(ctx, sub.ID)
		if err != nil {
			log.Fatal("evaluate submission", "submission_id", sub.ID, "error", err)
		}
		log.Info("seeded submission",
			"submission_id", sub.ID,
			"learning", res.Scores.LearningScore,
			"application", res.Scores.ApplicationScore,
			"style", res.Labels.OverallStyle,
		)
	}

	log.Info("seeding finished", "count", *count, "store", cfg.Store.Driver)
}
