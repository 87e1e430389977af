package domain

// SearchTermRow é uma linha do relatório search_term_view da API do
// Google Ads (GAQL).
type SearchTermRow struct {
	SearchTermView struct {
		SearchTerm string `json:"searchTerm"`
	} `json:"searchTermView"`
	Campaign struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"campaign"`
	AdGroup struct {
		ID string `json:"id"`
	} `json:"adGroup"`
	Metrics struct {
		Impressions string  `json:"impressions"`
		Clicks      string  `json:"clicks"`
		CostMicros  string  `json:"costMicros"`
		Conversions float64 `json:"conversions"`
	} `json:"metrics"`
}

type SearchStreamResponse struct {
	Results []SearchTermRow `json:"results"`
}

// NegativeCriterion é o critério de palavra-chave negativa enviado na
// mutação de exclusão.
type NegativeCriterion struct {
	CampaignID  string `json:"campaign_id"`
	KeywordText string `json:"keyword_text"`
	MatchType   string `json:"match_type"`
}

type MutateResponse struct {
	Results []struct {
		ResourceName string `json:"resourceName"`
	} `json:"results"`
}

type APIError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
