package services

import (
	"context"
	"time"

	"github.com/tadeyemo32/persona-backend/models"
)

// Enricher simulates the upstream enrichment provider. Real providers sit
// behind the same signature; this one returns a canned payload after a
// configurable latency so the cache in front of it has something slow to
// protect.
type Enricher struct {
	latency time.Duration
	now     func() time.Time
}

func NewEnricher(latency time.Duration) *Enricher {
	return &Enricher{latency: latency, now: time.Now}
}

// Enrich produces the enrichment payload for a query. Honors context
// cancellation during the simulated latency.
func (e *Enricher) Enrich(ctx context.Context, query models.SearchQuery) (models.EnrichmentData, error) {
	if e.latency > 0 {
		timer := time.NewTimer(e.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return models.EnrichmentData{}, ctx.Err()
		case <-timer.C:
		}
	}

	person := query.PersonName
	if person == "" {
		person = "Person"
	}
	company := query.CompanyName
	if company == "" {
		company = "Company"
	}

	data := basePayload
	data.Title = person + " at " + company + " - Enriched on " + e.now().Format("Jan 2, 2006, 3:04:05 PM")
	return data, nil
}

// basePayload is the demo enrichment result returned for every query while
// no live data providers are wired in.
var basePayload = models.EnrichmentData{
	Person: models.Person{
		LinkedinURL:                   "https://www.linkedin.com/in/jennifer-smith-example",
		JobTitle:                      "VP Sales and Operations",
		TenureInCompany:               "3 years 4 months",
		Education:                     "B.S. in Business Administration",
		RecentLinkedinCommentOrPost:   "Commented on a post about Q2 sales strategies.",
		ConferenceSpeakerAttendance:   "Attended SaaStr Annual 2023",
		PersonalInterests:             "Marathon running, mentoring young professionals",
		IndustryAffiliation:           "Financial Services / Alternative Lending",
		PreferredCommunicationChannel: "Email",
		PainPointIndicators:           "Mentioned challenges with lead response times in a recent podcast.",
		DecisionInfluenceType:         "Decision Maker",
		RecentAwardsRecognition:       "2023 Sales Leader of the Year",
		ToolMentionsOrPartnerships:    "Salesforce, Outreach.io",
		EngagementReadinessScore:      85,
		PersonaType:                   "Revenue Executive",
	},
	Company: models.Company{
		CompanySize:                            "51-200 employees",
		PrimaryAudienceMarketSegment:           "Small and medium-sized businesses seeking working capital",
		Industry:                               "Financial Services / Alternative Lending / Business Financing",
		RevenueRange:                           "$10M - $50M",
		GrowthRate:                             "15% YoY",
		HeadquartersLocation:                   "New York, NY",
		Website:                                "https://ibusinessfunding.com",
		Description:                            "iBusiness Funding is a provider of alternative financing solutions for small and medium-sized businesses, including invoice factoring and working capital products.",
		FoundedYear:                            2013,
		MarketingTeamSize:                      "5-10 people",
		SalesTeamSize:                          "20-30 people",
		PressMentionsNewsCoverage:              "Featured in Forbes for innovative lending solutions.",
		FundingRounds:                          "Series B, $25M",
		RecentJobPosting:                       "Hiring for Sales Development Representatives.",
		RecentJobHiring:                        "Recently hired a new Director of Marketing.",
		TechStack:                              "Salesforce, Marketo, AWS",
		Partnerships:                           "Partnered with several accounting software firms.",
		Vendors:                                "Uses Stripe for payment processing.",
		CustomerAcquisitionChannels:            "Direct sales, online lead generation, broker/partner referrals",
		KnownCompanyChallenges:                 "Scaling the sales team while maintaining high lead quality.",
		ComplianceChangesAffectingThem:         "Adapting to new state-level lending regulations.",
		DirectCompetitorList:                   "Alternative lenders, invoice factoring companies, small business lenders",
		CompetitorsCustomerEngagementPlatforms: "Some competitors use Intercom or Drift.",
		IndustryBenchmarkPerformance:           "Above average in loan approval speed.",
		PainCategoryTag:                        "Working Capital / Speed-to-Lead",
		SolutionFitTag:                         "Invoice Factoring / Working Capital Solutions",
		RecentActivity:                         "Launched a new partner portal last month.",
	},
	Outreach: models.Outreach{
		BotsplashRelation: "prospect",
		BotsplashUseCasesPerson: []string{
			"Speed-to-lead automation for inbound web, partner, and phone leads",
			"Intelligent lead routing, prioritization, and SLA workflows for sales and operations",
			"Unified borrower and broker messaging via SMS, web chat, and email",
			"Automated reminders for document collection and e-sign tasks",
			"Real-time visibility and reporting across the funnel",
			"After-hours and weekend coverage with AI to human handoff",
			"Compliance controls for TCPA, opt-in, and conversation archiving",
		},
		BotsplashUseCasesCompany: []string{
			"Increase funded applications by engaging borrowers within seconds",
			"Reduce call volume and no-shows with 2-way SMS and scheduling",
			"Standardize broker communications and updates at scale",
			"Multilingual chat support for SMB owners",
			"Centralize all conversations in one platform integrated with existing CRM or LOS",
			"Deflect simple support to chat while routing complex cases to the right rep",
		},
		KeyFocusAreas: []string{
			"Sub-30-second speed-to-lead across all channels",
			"Consolidated broker and broker communications",
			"Automations for document collection and status updates",
			"Compliance-first messaging with TCPA and opt-out controls",
			"Flexible integrations with current CRM or LOS",
			"After-hours coverage with seamless agent escalation",
		},
		EmailSubject: "Faster speed-to-lead for SMB financing at iBusiness Funding",
		EmailSequence: []string{
			"Hi Jennifer,\n\nYou lead Sales and Operations at iBusiness Funding, so keeping borrowers and brokers engaged quickly is critical. Botsplash helps SMB lenders respond in seconds and manage all conversations in one place.\n\nWith Botsplash you can:\n- Reply to web, partner, and phone leads in under 30 seconds via SMS or chat\n- Auto-route and prioritize leads to your team with SLA timers\n- Automate doc-collection nudges and status updates\n- Provide after-hours coverage with AI to agent handoff\n\nOpen to a 15-minute overview next week?",
			"Hi Jennifer,\n\nFollowing up with a bit more detail on outcomes lenders see with Botsplash:\n- 30 to 60 percent faster speed-to-lead and higher contact rates\n- 10 to 25 percent lift in funded deals from improved follow-up\n- 20 to 40 percent fewer inbound calls through 2-way SMS and chat\n- TCPA compliance with opt-in management and conversation archiving\n\nWe plug into your CRM or LOS and centralize SMS, chat, and email so sales and ops share one view of each borrower and broker.\n\nWorth a quick walkthrough to see if this fits your process?",
			"Hi Jennifer,\n\nCommon hiccups we fix for sales and ops teams:\n- Leads waiting minutes for a first touch\n- Disjointed broker updates across email, phone, and text\n- Manual doc reminders and task follow-ups\n- Limited visibility into conversation history and SLAs\n\nIf this resonates, we can spin up a small pilot on one intake channel or team in about 2 weeks with minimal IT lift.\n\nInterested in exploring a pilot?",
			"Hi Jennifer,\n\nLast note from me. If timing is not ideal, I can share resources instead:\n- A checklist to get speed-to-lead under 30 seconds\n- A sample borrower messaging playbook for SMB financing\n- A quick ROI model for centralized messaging\n\nWould any of these be helpful?",
		},
		LinkedinConnectionMessage: "Hi Jennifer, I work with lenders at Botsplash to improve speed-to-lead and unify borrower and broker messaging. Would love to connect and share ideas relevant to iBusiness Funding.",
		LinkedinFirstMessage:      "Thanks for connecting, Jennifer. Quick idea for iBusiness Funding: consolidate SMS, chat, and email so sales and ops hit sub-30-second first responses, automate doc reminders, and stay TCPA compliant. Open to a 15-minute intro?",
	},
}
