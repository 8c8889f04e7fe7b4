package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	CitizenRepository      *CitizenRepository
	CategoryRepository     *CategoryRepository
	InterestRepository     *InterestRepository
	SchemeRepository       *SchemeRepository
	RuleRepository         *RuleRepository
	EligibilityRepository  *EligibilityRepository
	ApplicationRepository  *ApplicationRepository
	GrievanceRepository    *GrievanceRepository
	AnnouncementRepository *AnnouncementRepository
}

// NewRepositories creates all repositories backed by the given pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		CitizenRepository:      NewCitizenRepository(db),
		CategoryRepository:     NewCategoryRepository(db),
		InterestRepository:     NewInterestRepository(db),
		SchemeRepository:       NewSchemeRepository(db),
		RuleRepository:         NewRuleRepository(db),
		EligibilityRepository:  NewEligibilityRepository(db),
		ApplicationRepository:  NewApplicationRepository(db),
		GrievanceRepository:    NewGrievanceRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
	}
}
