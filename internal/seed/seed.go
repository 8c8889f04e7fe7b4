package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/smart-beneficiary/sbms/internal/app/models"
	appRepos "github.com/smart-beneficiary/sbms/internal/app/repositories"
	"github.com/smart-beneficiary/sbms/internal/pkg/apperrors"
)

func iptr(v int) *int { return &v }

func fptr(v float64) *float64 { return &v }

// CreateDefaultData creates the default beneficiary categories and a small
// starter catalog of schemes and rules if the database is empty.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	categoryRepo := appRepos.NewCategoryRepository(dbPool)
	schemeRepo := appRepos.NewSchemeRepository(dbPool)
	ruleRepo := appRepos.NewRuleRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (categories, starter schemes)...")

	existing, err := categoryRepo.GetAll(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error reading categories")
		return err
	}
	if len(existing) > 0 {
		lgr.Info().Int("categories", len(existing)).Msg("Default data already present, skipping seed")
		return nil
	}

	categories := []*appModels.Category{
		{Name: "Student", Description: "Scholarships and education support schemes"},
		{Name: "Farmer", Description: "Agricultural subsidies and crop support schemes"},
		{Name: "Senior Citizen", Description: "Pension and welfare schemes for the elderly"},
		{Name: "Women", Description: "Empowerment and livelihood schemes for women"},
		{Name: "Unemployed", Description: "Skill development and employment assistance"},
		{Name: "Entrepreneur", Description: "Startup and small business support schemes"},
	}

	var finalErr error
	byName := make(map[string]int64, len(categories))
	for _, category := range categories {
		if err := categoryRepo.Create(ctx, category); err != nil {
			if !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
				lgr.Error().Err(err).Str("name", category.Name).Msg("Error creating category")
				finalErr = errors.Join(finalErr, err)
			}
			continue
		}
		byName[category.Name] = category.ID
	}

	type starterScheme struct {
		target string
		scheme appModels.Scheme
		rule   appModels.Rule
	}

	starters := []starterScheme{
		{
			target: "Student",
			scheme: appModels.Scheme{
				Name:        "State Merit Scholarship",
				Description: "Merit scholarship for students from low income families",
				Benefits:    "Rs.10000 per year towards tuition",
				BenefitType: "Scholarship",
				State:       "Kerala",
				IsActive:    true,
			},
			rule: appModels.Rule{
				AgeMin:            iptr(15),
				AgeMax:            iptr(35),
				MaxIncome:         fptr(250000),
				Location:          "Kerala",
				EducationRequired: "12th Pass",
			},
		},
		{
			target: "Farmer",
			scheme: appModels.Scheme{
				Name:        "Crop Input Subsidy",
				Description: "Seasonal input subsidy for small and marginal farmers",
				Benefits:    "Subsidized seeds and fertilizer",
				BenefitType: "Subsidy",
				IsActive:    true,
			},
			rule: appModels.Rule{
				AgeMin:    iptr(18),
				MaxIncome: fptr(300000),
			},
		},
		{
			target: "Senior Citizen",
			scheme: appModels.Scheme{
				Name:        "Old Age Pension",
				Description: "Monthly pension for senior citizens below the income ceiling",
				Benefits:    "Rs.1600 per month",
				BenefitType: "Pension",
				IsActive:    true,
			},
			rule: appModels.Rule{
				AgeMin:    iptr(60),
				MaxIncome: fptr(100000),
			},
		},
		{
			target: "Women",
			scheme: appModels.Scheme{
				Name:        "Women Entrepreneurship Grant",
				Description: "Seed grant for women-led micro enterprises",
				Benefits:    "One-time grant up to Rs.200000",
				BenefitType: "Grant",
				IsActive:    true,
			},
			rule: appModels.Rule{
				AgeMin: iptr(18),
				AgeMax: iptr(55),
				Gender: "Female",
			},
		},
	}

	for _, starter := range starters {
		categoryID, ok := byName[starter.target]
		if !ok {
			continue
		}

		starter.scheme.TargetCategory = categoryID
		if err := schemeRepo.Create(ctx, &starter.scheme); err != nil {
			lgr.Error().Err(err).Str("name", starter.scheme.Name).Msg("Error creating starter scheme")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		starter.rule.SchemeID = starter.scheme.ID
		starter.rule.CategoryID = categoryID
		if err := ruleRepo.Create(ctx, &starter.rule); err != nil {
			lgr.Error().Err(err).Str("scheme", starter.scheme.Name).Msg("Error creating starter rule")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
