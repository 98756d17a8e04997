package client

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/askiep/askiep-api/internal/models"
)

func localID() string {
	return "local-" + uuid.NewString()
}

// GetProfile returns the active profile, falling back to the last cached
// copy when the server is unreachable. nil means onboarding has not run.
func (c *Client) GetProfile(ctx context.Context) (*models.ChildProfile, error) {
	var profile *models.ChildProfile
	if err := c.do(ctx, http.MethodGet, "/profile", nil, &profile); err != nil {
		if surfaced(err) {
			return nil, err
		}
		c.logger.Debug("profile fetch failed, using local copy", zap.Error(err))
		var cached models.ChildProfile
		if c.store.Get(keyProfile, &cached) {
			return &cached, nil
		}
		return nil, nil
	}
	if profile != nil {
		c.store.Set(keyProfile, profile)
	}
	return profile, nil
}

// SaveProfile persists the profile remotely, or locally with a synthesized
// id when the server is unreachable.
func (c *Client) SaveProfile(ctx context.Context, profile models.ChildProfile) (models.ChildProfile, error) {
	var saved models.ChildProfile
	if err := c.do(ctx, http.MethodPost, "/profile", profile, &saved); err != nil {
		if surfaced(err) {
			return models.ChildProfile{}, err
		}
		c.logger.Debug("profile save failed, persisting locally", zap.Error(err))
		if profile.ID == "" {
			profile.ID = localID()
		}
		if profile.CreatedAt.IsZero() {
			profile.CreatedAt = time.Now().UTC()
		}
		c.store.Set(keyProfile, profile)
		return profile, nil
	}
	c.store.Set(keyProfile, saved)
	return saved, nil
}

// GetDocuments lists document metadata, writing through to the local store.
func (c *Client) GetDocuments(ctx context.Context, childID string) ([]models.IepDocument, error) {
	var docs []models.IepDocument
	if err := c.do(ctx, http.MethodGet, "/documents/"+childID, nil, &docs); err != nil {
		if surfaced(err) {
			return nil, err
		}
		var cached []models.IepDocument
		c.store.Get(keyDocuments, &cached)
		return cached, nil
	}
	c.store.Set(keyDocuments, docs)
	return docs, nil
}

// GetLatestAnalysis returns the most recent analysis, nil when none exists.
func (c *Client) GetLatestAnalysis(ctx context.Context, childID string) (*models.IepAnalysis, error) {
	var analysis *models.IepAnalysis
	if err := c.do(ctx, http.MethodGet, "/analysis/latest/"+childID, nil, &analysis); err != nil {
		if surfaced(err) {
			return nil, err
		}
		var cached models.IepAnalysis
		if c.store.Get(keyAnalysis, &cached) && cached.ChildID == childID {
			return &cached, nil
		}
		return nil, nil
	}
	if analysis != nil {
		c.store.Set(keyAnalysis, analysis)
	}
	return analysis, nil
}

// GetComplianceLogs lists service-delivery entries, newest first.
func (c *Client) GetComplianceLogs(ctx context.Context, childID string) ([]models.ComplianceLog, error) {
	var logs []models.ComplianceLog
	if err := c.do(ctx, http.MethodGet, "/compliance/"+childID, nil, &logs); err != nil {
		if surfaced(err) {
			return nil, err
		}
		var cached []models.ComplianceLog
		c.store.Get(keyCompliance, &cached)
		return cached, nil
	}
	return logs, nil
}

// AddComplianceLog appends a compliance entry, locally when unreachable.
func (c *Client) AddComplianceLog(ctx context.Context, log models.ComplianceLog) (models.ComplianceLog, error) {
	var saved models.ComplianceLog
	if err := c.do(ctx, http.MethodPost, "/compliance", log, &saved); err != nil {
		if surfaced(err) {
			return models.ComplianceLog{}, err
		}
		log.ID = localID()
		log.CreatedAt = time.Now().UTC()
		var cached []models.ComplianceLog
		c.store.Get(keyCompliance, &cached)
		c.store.Set(keyCompliance, append([]models.ComplianceLog{log}, cached...))
		return log, nil
	}
	return saved, nil
}

// GetGoalProgress lists progress measurements, newest first.
func (c *Client) GetGoalProgress(ctx context.Context, childID string) ([]models.GoalProgress, error) {
	var entries []models.GoalProgress
	if err := c.do(ctx, http.MethodGet, "/progress/"+childID, nil, &entries); err != nil {
		if surfaced(err) {
			return nil, err
		}
		var cached []models.GoalProgress
		c.store.Get(keyProgress, &cached)
		return cached, nil
	}
	return entries, nil
}

// AddGoalProgress appends a progress measurement, locally when unreachable.
func (c *Client) AddGoalProgress(ctx context.Context, entry models.GoalProgress) (models.GoalProgress, error) {
	var saved models.GoalProgress
	if err := c.do(ctx, http.MethodPost, "/progress", entry, &saved); err != nil {
		if surfaced(err) {
			return models.GoalProgress{}, err
		}
		entry.ID = localID()
		entry.LastUpdated = time.Now().UTC()
		var cached []models.GoalProgress
		c.store.Get(keyProgress, &cached)
		c.store.Set(keyProgress, append([]models.GoalProgress{entry}, cached...))
		return entry, nil
	}
	return saved, nil
}

// GetCommLogs lists communication entries, newest first.
func (c *Client) GetCommLogs(ctx context.Context, childID string) ([]models.CommLogEntry, error) {
	var entries []models.CommLogEntry
	if err := c.do(ctx, http.MethodGet, "/comms/"+childID, nil, &entries); err != nil {
		if surfaced(err) {
			return nil, err
		}
		var cached []models.CommLogEntry
		c.store.Get(keyComms, &cached)
		return cached, nil
	}
	return entries, nil
}

// AddCommLog appends a communication entry, locally when unreachable.
func (c *Client) AddCommLog(ctx context.Context, entry models.CommLogEntry) (models.CommLogEntry, error) {
	var saved models.CommLogEntry
	if err := c.do(ctx, http.MethodPost, "/comms", entry, &saved); err != nil {
		if surfaced(err) {
			return models.CommLogEntry{}, err
		}
		entry.ID = localID()
		entry.CreatedAt = time.Now().UTC()
		var cached []models.CommLogEntry
		c.store.Get(keyComms, &cached)
		c.store.Set(keyComms, append([]models.CommLogEntry{entry}, cached...))
		return entry, nil
	}
	return saved, nil
}

// GetBehaviorLogs lists behavior observations, newest first.
func (c *Client) GetBehaviorLogs(ctx context.Context, childID string) ([]models.BehaviorLog, error) {
	var logs []models.BehaviorLog
	if err := c.do(ctx, http.MethodGet, "/behavior/"+childID, nil, &logs); err != nil {
		if surfaced(err) {
			return nil, err
		}
		var cached []models.BehaviorLog
		c.store.Get(keyBehavior, &cached)
		return cached, nil
	}
	return logs, nil
}

// AddBehaviorLog appends a behavior observation, locally when unreachable.
func (c *Client) AddBehaviorLog(ctx context.Context, log models.BehaviorLog) (models.BehaviorLog, error) {
	var saved models.BehaviorLog
	if err := c.do(ctx, http.MethodPost, "/behavior", log, &saved); err != nil {
		if surfaced(err) {
			return models.BehaviorLog{}, err
		}
		log.ID = localID()
		log.CreatedAt = time.Now().UTC()
		var cached []models.BehaviorLog
		c.store.Get(keyBehavior, &cached)
		c.store.Set(keyBehavior, append([]models.BehaviorLog{log}, cached...))
		return log, nil
	}
	return saved, nil
}

// GetLetters lists letter drafts, most recently edited first.
func (c *Client) GetLetters(ctx context.Context, childID string) ([]models.LetterDraft, error) {
	var drafts []models.LetterDraft
	if err := c.do(ctx, http.MethodGet, "/letters/"+childID, nil, &drafts); err != nil {
		if surfaced(err) {
			return nil, err
		}
		var cached []models.LetterDraft
		c.store.Get(keyLetters, &cached)
		return cached, nil
	}
	return drafts, nil
}

// SaveLetter creates or updates a draft, locally when unreachable.
func (c *Client) SaveLetter(ctx context.Context, draft models.LetterDraft) (models.LetterDraft, error) {
	var saved models.LetterDraft
	if err := c.do(ctx, http.MethodPost, "/letters", draft, &saved); err != nil {
		if surfaced(err) {
			return models.LetterDraft{}, err
		}
		if draft.ID == "" {
			draft.ID = localID()
		}
		draft.LastEdited = time.Now().UTC()
		var cached []models.LetterDraft
		c.store.Get(keyLetters, &cached)
		updated := []models.LetterDraft{draft}
		for _, existing := range cached {
			if existing.ID != draft.ID {
				updated = append(updated, existing)
			}
		}
		c.store.Set(keyLetters, updated)
		return draft, nil
	}
	return saved, nil
}
