package models

import (
	"strings"
	"time"
)

// ========================
// SEARCH & HISTORY MODELS
// ========================

// SearchQuery is the multi-field search form submitted by the frontend.
// Two queries are the same search iff every field value matches; field
// order never matters.
type SearchQuery struct {
	PersonName     string `json:"personName"`
	Title          string `json:"title"`
	CompanyName    string `json:"companyName"`
	AdditionalInfo string `json:"additionalInfo"`
}

// Fields returns the query as named field/value pairs for fingerprinting.
func (q SearchQuery) Fields() map[string]string {
	return map[string]string{
		"personName":     q.PersonName,
		"title":          q.Title,
		"companyName":    q.CompanyName,
		"additionalInfo": q.AdditionalInfo,
	}
}

// IsEmpty reports whether every field is blank or whitespace-only.
func (q SearchQuery) IsEmpty() bool {
	for _, v := range q.Fields() {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// SearchHistoryEntry is one persisted enrichment result. The ID is the
// query fingerprint, so re-running the same search overwrites the row
// instead of duplicating it. Query and Data are stored as JSON blobs and
// are never mutated after creation; a refresh is a full replacement.
type SearchHistoryEntry struct {
	ID        string         `gorm:"primaryKey;size:64" json:"id"`
	Query     SearchQuery    `gorm:"serializer:json" json:"query"`
	Data      EnrichmentData `gorm:"serializer:json" json:"data"`
	// autoCreateTime is disabled: the coordinator stamps this field
	// itself, and a refresh must overwrite it along with the payload.
	CreatedAt time.Time `gorm:"index;autoCreateTime:false" json:"createdAt"`
	UserID    string         `gorm:"index" json:"userId"`
}

// SearchIndexEntry is the secondary index: one row per fingerprint ever
// written. History listing enumerates through this table rather than
// scanning search_history_entries directly.
type SearchIndexEntry struct {
	Fingerprint string `gorm:"primaryKey;size:64"`
}

// ========================
// ENRICHMENT PAYLOAD
// ========================

// Person holds the person-level enrichment signals.
type Person struct {
	LinkedinURL                   string `json:"linkedin_url"`
	JobTitle                      string `json:"job_title"`
	TenureInCompany               string `json:"tenure_in_company"`
	Education                     string `json:"education"`
	RecentLinkedinCommentOrPost   string `json:"recent_linkedin_comment_or_post"`
	ConferenceSpeakerAttendance   string `json:"conference_speaker_attendance"`
	PersonalInterests             string `json:"personal_interests"`
	IndustryAffiliation           string `json:"industry_affiliation"`
	PreferredCommunicationChannel string `json:"preferred_communication_channel"`
	PainPointIndicators           string `json:"pain_point_indicators"`
	DecisionInfluenceType         string `json:"decision_influence_type"`
	RecentAwardsRecognition       string `json:"recent_awards_recognition"`
	ToolMentionsOrPartnerships    string `json:"tool_mentions_or_partnerships"`
	EngagementReadinessScore      int    `json:"engagement_readiness_score"`
	PersonaType                   string `json:"persona_type"`
}

// Company holds the company-level enrichment signals.
type Company struct {
	CompanySize                            string `json:"company_size"`
	PrimaryAudienceMarketSegment           string `json:"primary_audience_market_segment"`
	Industry                               string `json:"industry"`
	RevenueRange                           string `json:"revenue_range"`
	GrowthRate                             string `json:"growth_rate"`
	HeadquartersLocation                   string `json:"headquarters_location"`
	Website                                string `json:"website"`
	Description                            string `json:"description"`
	FoundedYear                            int    `json:"founded_year"`
	MarketingTeamSize                      string `json:"marketing_team_size"`
	SalesTeamSize                          string `json:"sales_team_size"`
	PressMentionsNewsCoverage              string `json:"press_mentions_news_coverage"`
	FundingRounds                          string `json:"funding_rounds"`
	RecentJobPosting                       string `json:"recent_job_posting"`
	RecentJobHiring                        string `json:"recent_job_hiring"`
	TechStack                              string `json:"tech_stack"`
	Partnerships                           string `json:"partnerships"`
	Vendors                                string `json:"vendors"`
	CustomerAcquisitionChannels            string `json:"customer_acquisition_channels"`
	KnownCompanyChallenges                 string `json:"known_company_challenges"`
	ComplianceChangesAffectingThem         string `json:"compliance_changes_affecting_them"`
	DirectCompetitorList                   string `json:"direct_competitor_list"`
	CompetitorsCustomerEngagementPlatforms string `json:"competitors_customer_engagement_platforms"`
	IndustryBenchmarkPerformance           string `json:"industry_benchmark_performance"`
	PainCategoryTag                        string `json:"pain_category_tag"`
	SolutionFitTag                         string `json:"solution_fit_tag"`
	RecentActivity                         string `json:"recent_activity"`
}

// Outreach holds the generated outreach assets.
type Outreach struct {
	BotsplashRelation         string   `json:"botsplash_relation"`
	BotsplashUseCasesPerson   []string `json:"botsplash_use_cases_person"`
	BotsplashUseCasesCompany  []string `json:"botsplash_use_cases_company"`
	KeyFocusAreas             []string `json:"key_focus_areas"`
	EmailSubject              string   `json:"email_subject"`
	EmailSequence             []string `json:"email_sequence"`
	LinkedinConnectionMessage string   `json:"linkedin_connection_message"`
	LinkedinFirstMessage      string   `json:"linkedin_first_message"`
}

// EnrichmentData is the full enrichment result. The cache layer treats it
// as an opaque blob; only the enricher ever builds one.
type EnrichmentData struct {
	Title    string   `json:"title,omitempty"`
	Person   Person   `json:"person"`
	Company  Company  `json:"company"`
	Outreach Outreach `json:"outreach"`
}

// ========================
// API REQUEST PAYLOADS
// ========================

type EnrichRequest struct {
	Query SearchQuery `json:"query"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
