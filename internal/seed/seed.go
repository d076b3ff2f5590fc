// File: internal/seed/seed.go
package seed

import (
	"context"
	"fmt"
	"time"

	"volunteer_hub_backend/internal/common"
	"volunteer_hub_backend/internal/opportunity"
	"volunteer_hub_backend/internal/organization"
	"volunteer_hub_backend/internal/platform/database"
	"volunteer_hub_backend/internal/user"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Runner loads the demo dataset: three organizations and their open
// volunteering opportunities.
type Runner struct {
	handle *database.Handle
	logger *zap.Logger
}

// NewRunner creates a new seed runner.
func NewRunner(handle *database.Handle, logger *zap.Logger) *Runner {
	return &Runner{handle: handle, logger: logger}
}

type orgSeed struct {
	openID      string
	userName    string
	name        string
	description string
	location    string
	website     string
}

type oppSeed struct {
	orgIndex         int
	title            string
	description      string
	category         string
	location         string
	startDate        string
	endDate          string
	volunteersNeeded int
	skillsRequired   []string
}

var orgSeeds = []orgSeed{
	{
		openID:      "seed-org-educacao",
		userName:    "Educação para Todos",
		name:        "Educação para Todos",
		description: "Organização dedicada a fornecer educação de qualidade para comunidades carentes.",
		location:    "São Paulo, SP",
		website:     "https://educacaoparatodos.org",
	},
	{
		openID:      "seed-org-saude",
		userName:    "Saúde Comunitária",
		name:        "Saúde Comunitária",
		description: "Promovendo saúde e bem-estar em comunidades de baixa renda.",
		location:    "Rio de Janeiro, RJ",
		website:     "https://saudecomunitaria.org",
	},
	{
		openID:      "seed-org-ambiente",
		userName:    "Meio Ambiente Sustentável",
		name:        "Meio Ambiente Sustentável",
		description: "Trabalhando pela preservação do meio ambiente e sustentabilidade.",
		location:    "Belo Horizonte, MG",
		website:     "https://meioambiente.org",
	},
}

var oppSeeds = []oppSeed{
	{0, "Professor Voluntário - Reforço Escolar",
		"Procuramos voluntários para ajudar alunos do ensino fundamental com reforço escolar em matemática e português.",
		"Educação", "São Paulo, SP", "2024-11-01", "2024-12-31", 5,
		[]string{"Ensino", "Paciência", "Comunicação"}},
	{0, "Tutor Online para Inglês",
		"Voluntários para ensinar inglês online para crianças e adolescentes de comunidades carentes.",
		"Educação", "São Paulo, SP", "2024-11-15", "2025-03-31", 3,
		[]string{"Inglês fluente", "Ensino online", "Paciência"}},
	{1, "Agente de Saúde Comunitária",
		"Ajude a levar informações sobre saúde preventiva para comunidades. Treinamento fornecido.",
		"Saúde", "Rio de Janeiro, RJ", "2024-11-01", "2025-02-28", 10,
		[]string{"Comunicação", "Empatia", "Organização"}},
	{1, "Assistente em Clínica Móvel",
		"Voluntários para ajudar em atendimentos de saúde em clínicas móveis que atendem comunidades carentes.",
		"Saúde", "Rio de Janeiro, RJ", "2024-11-10", "2025-01-31", 8,
		[]string{"Saúde", "Organização", "Dedicação"}},
	{2, "Plantio de Árvores - Reflorestamento",
		"Participe de atividades de reflorestamento e recuperação de áreas verdes. Atividade ao ar livre.",
		"Meio Ambiente", "Belo Horizonte, MG", "2024-11-20", "2024-12-15", 20,
		[]string{"Disposição física", "Amor pela natureza"}},
	{2, "Educador Ambiental",
		"Voluntários para ensinar sobre sustentabilidade e conservação ambiental em escolas e comunidades.",
		"Meio Ambiente", "Belo Horizonte, MG", "2024-12-01", "2025-05-31", 4,
		[]string{"Educação", "Conhecimento ambiental", "Comunicação"}},
	{0, "Assistente de Biblioteca Comunitária",
		"Ajude a organizar e gerenciar uma biblioteca comunitária. Atividades incluem catalogação e atendimento ao público.",
		"Educação", "São Paulo, SP", "2024-11-01", "2025-06-30", 6,
		[]string{"Organização", "Atenção ao detalhe", "Atendimento ao público"}},
	{1, "Voluntário para Campanhas de Vacinação",
		"Ajude em campanhas de vacinação e educação em saúde. Treinamento completo fornecido.",
		"Saúde", "Rio de Janeiro, RJ", "2024-11-25", "2025-01-15", 15,
		[]string{"Comunicação", "Organização", "Responsabilidade"}},
}

// Run loads the demo dataset. It is idempotent on re-runs for users and
// organizations (conflicts on the unique keys are skipped), and requires a
// connected database.
func (r *Runner) Run(ctx context.Context) error {
	db, ok := r.handle.DB()
	if !ok {
		return fmt.Errorf("cannot seed: database not available")
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orgIDs := make([]uint, len(orgSeeds))
		for i, os := range orgSeeds {
			name := os.userName
			usr := user.User{
				OpenID:       os.openID,
				Name:         &name,
				Role:         common.RoleUser,
				LastSignedIn: time.Now().UTC(),
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "open_id"}},
				DoNothing: true,
			}).Create(&usr).Error; err != nil {
				return fmt.Errorf("failed to seed user %s: %w", os.openID, err)
			}
			if usr.ID == 0 {
				if err := tx.Where("open_id = ?", os.openID).First(&usr).Error; err != nil {
					return fmt.Errorf("failed to load seeded user %s: %w", os.openID, err)
				}
			}

			org := organization.Organization{
				UserID:      usr.ID,
				Name:        os.name,
				Description: &os.description,
				Location:    &os.location,
				Website:     &os.website,
				Verified:    true,
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}},
				DoNothing: true,
			}).Create(&org).Error; err != nil {
				return fmt.Errorf("failed to seed organization %s: %w", os.name, err)
			}
			if org.ID == 0 {
				if err := tx.Where("user_id = ?", usr.ID).First(&org).Error; err != nil {
					return fmt.Errorf("failed to load seeded organization %s: %w", os.name, err)
				}
			}
			orgIDs[i] = org.ID
		}
		r.logger.Info("Seeded organizations", zap.Int("count", len(orgSeeds)))

		for _, ops := range oppSeeds {
			start, err := time.Parse("2006-01-02", ops.startDate)
			if err != nil {
				return fmt.Errorf("bad seed start date %q: %w", ops.startDate, err)
			}
			end, err := time.Parse("2006-01-02", ops.endDate)
			if err != nil {
				return fmt.Errorf("bad seed end date %q: %w", ops.endDate, err)
			}

			category := ops.category
			needed := ops.volunteersNeeded
			opp := opportunity.Opportunity{
				OrganizationID:   orgIDs[ops.orgIndex],
				Title:            ops.title,
				Description:      ops.description,
				Category:         &category,
				Location:         ops.location,
				StartDate:        &start,
				EndDate:          &end,
				VolunteersNeeded: &needed,
				SkillsRequired:   common.EncodeStringList(ops.skillsRequired),
				Status:           opportunity.StatusActive,
			}
			if err := tx.Create(&opp).Error; err != nil {
				return fmt.Errorf("failed to seed opportunity %s: %w", ops.title, err)
			}
		}
		r.logger.Info("Seeded opportunities", zap.Int("count", len(oppSeeds)))
		return nil
	})
}
