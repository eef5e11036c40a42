package models

type JudgmentParties struct {
	Appellant  string `json:"appellant"`
	Respondent string `json:"respondent"`
}

type JudgmentFile struct {
	Judge    string `json:"judge"`
	Type     string `json:"type"`
	Decision string `json:"decision"`
	File     string `json:"file"`
}

// Judgment mirrors one row of the eJudgement search output.
type Judgment struct {
	ID           string          `json:"id"`
	Bil          int             `json:"bil"`
	CaseNo       string          `json:"caseNo"`
	Court        string          `json:"court"`
	Parties      JudgmentParties `json:"parties"`
	Keywords     []string        `json:"keywords"`
	DecisionDate string          `json:"decisionDate"`
	UploadDate   string          `json:"uploadDate"`
	Quorum       []string        `json:"quorum"`
	Judgments    []JudgmentFile  `json:"judgments"`
}

// JudgmentQuery carries the eJudgement search form fields. Empty fields
// match everything.
type JudgmentQuery struct {
	Category      string `json:"category"`
	Location      string `json:"location"`
	CaseType      string `json:"caseType"`
	GeneralSearch string `json:"generalSearch"`
	JudgeName     string `json:"judgeName"`
}
