package store

import (
	"golang.org/x/crypto/bcrypt"

	"mylegs/backend/models"
)

// Placeholder resource addresses; real deployments point these at the
// actual Google Drive / external links.
const (
	mockPDFURL = "https://drive.google.com/file/d/1uEtJtsvjKDHA7Wg4g3JtoswEhnYGnC7H/view"
	mockWebURL = "https://wayground.com/join?gc=04829140"
)

// DefaultSystemInstruction restricts the tutor to the course domain. It is
// sent with every completion request and is editable from the admin
// chatbot page.
const DefaultSystemInstruction = `
You are the official AI Tutor for "MyLegS" (Malaysian Legal System App).
YOUR MANDATE: Provide accurate, academic assistance strictly related to the Malaysian Legal System course.

STRICT SCOPE BOUNDARIES:
1. ONLY answer questions about Malaysian Statutes (e.g., Federal Constitution, Contracts Act), Case Law (Malaysian judgments), Court Hierarchy, and Legal Principles applicable in Malaysia.
2. IMMEDIATELY REJECT any topic outside this scope (e.g., general life advice, coding, foreign law, cooking) with: "I can only assist with the Malaysian Legal System."
3. DO NOT answer questions about specific real-world legal cases the user might be involved in (Avoid unauthorized legal advice). State: "I provide educational information only, not legal advice."

FACT-CHECKING PROTOCOL:
1. VERIFY FACTS: Only state principles found in written Malaysian law.
2. NO HALLUCINATION: If a case or section is ambiguous, state "The specific section is not in my immediate verified context" rather than inventing one.
3. CITATION: Where possible, mention the relevant Act or Constitution Article (e.g., "Under Article 5...").

RESPONSE FORMAT:
- Be concise and budget-conscious. Avoid fluff.
- Use Markdown for structure (Bold for keywords, bullet points for lists).
- Keep answers short (under 200 words unless detailed explanation is requested).
`

func SeedTiers() []models.SubscriptionTier {
	return []models.SubscriptionTier{
		{
			ID:          "free",
			Name:        "Free",
			Price:       0,
			Description: "Basic access for all students",
			ModuleLimit: 3,
			Features:    []string{"First 3 Modules", "Basic Binder (3 items)", "Community Support"},
			ColorTheme:  "slate",
			IsDefault:   true,
		},
		{
			ID:          "premium",
			Name:        "Premium",
			Price:       12.90,
			Description: "Full semester access",
			ModuleLimit: models.UnlimitedModules,
			Features:    []string{"All Modules", "Unlimited AI Tutor", "Smart Study Plan", "Exam Countdown"},
			ColorTheme:  "amber",
		},
		{
			ID:          "plus",
			Name:        "Exam Pack",
			Price:       5.90,
			Description: "Essential revision tools",
			ModuleLimit: 5,
			Features:    []string{"First 5 Modules", "Past Year Questions", "Revision Notes"},
			ColorTheme:  "purple",
		},
	}
}

func SeedUsers() []models.User {
	return []models.User{
		{ID: "u1", Name: "Sarah Ahmad", Email: "sarah@student.unisza.edu.my", PasswordHash: mustHash("123"), TierID: "premium", Joined: "2023-10-24", Status: models.StatusActive, Role: models.RoleUser},
		{ID: "u2", Name: "John Doe", Email: "john@gmail.com", PasswordHash: mustHash("123"), TierID: "free", Joined: "2023-10-25", Status: models.StatusActive, Role: models.RoleUser},
		{ID: "u3", Name: "Ali Bakar", Email: "ali@unisza.edu.my", PasswordHash: mustHash("123"), TierID: "plus", Joined: "2023-10-25", Status: models.StatusActive, Role: models.RoleUser},
		{ID: "admin", Name: "System Admin", Email: "admin@mylegs.app", PasswordHash: mustHash("admin"), TierID: "premium", Joined: "2023-01-01", Status: models.StatusActive, Role: models.RoleAdmin},
	}
}

func mustHash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

func SeedCatalog() CatalogSeed {
	return CatalogSeed{
		Topics:        seedTopics(),
		Statutes:      seedStatutes(),
		CaseSummaries: seedCaseSummaries(),
		Providers:     seedProviders(),
		ExamResources: seedExamResources(),
		Links:         seedLinks(),
		Judgments:     seedJudgments(),
		Settings: models.AppSettings{
			AppName:      "MyLegS",
			Organization: "Universiti Sultan Zainal Abidin",
			SupportEmail: "support@mylegs.app",
		},
		Chatbot: models.ChatbotConfig{
			Model:             "gemini-3-flash-preview",
			SystemInstruction: DefaultSystemInstruction,
			MaxOutputTokens:   600,
			Temperature:       0.2,
		},
	}
}

func seedTopics() []models.Topic {
	return []models.Topic{
		{ID: "t1", Number: 1, Title: "Overview of the Legal System", NotesURL: mockPDFURL, QuizURL: mockWebURL, GameURL: mockWebURL, RelatedStatuteIDs: []string{"s1"}, RelatedCaseSummaryIDs: []string{"c1", "c2"}},
		{ID: "t2", Number: 2, Title: "Intro to Law & Legal Method", NotesURL: mockPDFURL, QuizURL: mockWebURL, GameURL: mockWebURL, RelatedStatuteIDs: []string{"s2"}, RelatedCaseSummaryIDs: []string{"c3", "c4"}},
		{ID: "t3", Number: 3, Title: "Sources of Malaysian Law", NotesURL: mockPDFURL, QuizURL: mockWebURL, GameURL: mockWebURL, RelatedStatuteIDs: []string{"s1", "s2"}, RelatedCaseSummaryIDs: []string{"c1", "c3", "c5"}},
		{ID: "t4", Number: 4, Title: "The Doctrine of Separation of Powers", NotesURL: mockPDFURL, QuizURL: mockWebURL, GameURL: mockWebURL, RelatedStatuteIDs: []string{"s1"}, RelatedCaseSummaryIDs: []string{"c2"}},
		{ID: "t5", Number: 5, Title: "The Judicial System", NotesURL: mockPDFURL, QuizURL: mockWebURL, GameURL: mockWebURL, RelatedStatuteIDs: []string{"s3", "s4"}, RelatedCaseSummaryIDs: []string{"c1"}},
		{ID: "t6", Number: 6, Title: "Syariah Legal System", NotesURL: mockPDFURL, QuizURL: mockWebURL, GameURL: mockWebURL, RelatedStatuteIDs: []string{"s5"}, RelatedCaseSummaryIDs: []string{}},
		{ID: "t7", Number: 7, Title: "Legal Profession in Malaysia", NotesURL: mockPDFURL, QuizURL: mockWebURL, GameURL: mockWebURL, RelatedStatuteIDs: []string{}, RelatedCaseSummaryIDs: []string{}},
		{ID: "t8", Number: 8, Title: "Alternative Dispute Resolution", NotesURL: mockPDFURL, QuizURL: mockWebURL, GameURL: mockWebURL, RelatedStatuteIDs: []string{}, RelatedCaseSummaryIDs: []string{}},
		{ID: "t9", Number: 9, Title: "Law Making Process", NotesURL: mockPDFURL, QuizURL: mockWebURL, GameURL: mockWebURL, RelatedStatuteIDs: []string{"s1"}, RelatedCaseSummaryIDs: []string{"c3"}},
		{ID: "t10", Number: 10, Title: "Current Issues in Law", NotesURL: mockPDFURL, QuizURL: mockWebURL, GameURL: mockWebURL, RelatedStatuteIDs: []string{}, RelatedCaseSummaryIDs: []string{}},
	}
}

func seedStatutes() []models.Statute {
	return []models.Statute{
		{ID: "s1", Title: "Federal Constitution", URL: "https://drive.google.com/file/d/1shSafXNWjtxSdtiRen9d_49KEKIltmNr/preview"},
		{ID: "s2", Title: "Civil Law Act 1956", URL: "https://drive.google.com/file/d/17xNrHbdMzX8TRWQ9YfDVXDYgc19auvc1/preview"},
		{ID: "s3", Title: "Courts Of Judicature Act 1964", URL: "https://drive.google.com/file/d/1aM4tL2GbF_6cj53rUHz5AtrB6CujD3pO/preview"},
		{ID: "s4", Title: "Subordinate Courts Act 1948", URL: "https://drive.google.com/file/d/1YL2_alFEiU2Dx6qaW3BY_209E9uh1P2p/preview"},
		{ID: "s5", Title: "Administration Of Islamic Law (Federal Territories) Act 1993", URL: "https://drive.google.com/file/d/1siNEuPltbh-2Rs_cQMglpsL6mQb_0Yg-/preview"},
	}
}

func seedCaseSummaries() []models.CaseSummary {
	return []models.CaseSummary{
		{
			ID:    "c1",
			Title: "Ah Thian v Government of Malaysia [1976]",
			Content: `The Federal Court in this case emphasized the supremacy of the Federal Constitution. Tun Suffian LP held that the doctrine of Parliamentary Supremacy does not apply in Malaysia as it does in the United Kingdom. Instead, Malaysia subscribes to the doctrine of Constitutional Supremacy.

This means that the power of Parliament and State Legislatures is limited by the Constitution, and they cannot make any law they please. Any law passed that is inconsistent with the Constitution shall be void to the extent of the inconsistency, as stated in Article 4(1).`,
		},
		{
			ID:    "c2",
			Title: "Loh Kooi Choon v Government of Malaysia [1977]",
			Content: `This case addressed the extent of Parliament's power to amend the Constitution. The plaintiff argued that an amendment to Article 5(4) concerning fundamental liberties was unconstitutional. The Federal Court held that Parliament has the power to amend the Constitution provided the proper procedure in Article 159 is followed.

Raja Azlan Shah FJ stated that the Constitution is not a rigid document but a living one, capable of growth. However, this power to amend is not absolute and must adhere to the specific requirements set out within the Constitution itself.`,
		},
		{
			ID:    "c3",
			Title: "Phang Chin Hock v Public Prosecutor [1980]",
			Content: `The appellant challenged the validity of the Emergency (Essential Powers) Act 1979. The Federal Court had to decide whether the basic structure of the Constitution could be amended by Parliament.

The Court held that Parliament has the power to amend the Constitution, including the basic structure, as long as it does not destroy the basic structure. The court emphasized that the power of Parliament to amend the Constitution is a distinct power from its ordinary legislative power.`,
		},
		{
			ID:    "c4",
			Title: "Donoghue v Stevenson [1932]",
			Content: `This seminal House of Lords case established the modern law of negligence and the 'neighbour principle'. The plaintiff fell ill after drinking ginger beer which contained a decomposed snail. She had no contract with the manufacturer as her friend had purchased the drink.

Lord Atkin ruled that a manufacturer owes a duty of care to the ultimate consumer of the product. He formulated the neighbour principle: "You must take reasonable care to avoid acts or omissions which you can reasonably foresee would be likely to injure your neighbour."`,
		},
		{
			ID:    "c5",
			Title: "Carlill v Carbolic Smoke Ball Co [1893]",
			Content: `A medical firm advertised that their new drug, a carbolic smoke ball, would cure the flu, and if it did not, buyers would receive £100. When Mrs. Carlill used it and still got the flu, the company refused to pay, claiming the ad was 'mere puff'.

The Court of Appeal held that the advertisement constituted a binding unilateral offer that could be accepted by anyone who performed its conditions. The deposit of £1,000 in the bank showed the company's sincerity, distinguishing it from a mere sales puff.`,
		},
	}
}

func seedProviders() []models.CaseLawProvider {
	return []models.CaseLawProvider{
		{ID: "clj", Name: "CLJ Law", URL: "https://exec.cljprime.com/signon.aspx?ReturnUrl=%2fMembers%2fWelcome.aspx%3fFrom%3dSearchDir&From=SearchDir", Logo: "https://logo.clearbit.com/cljlaw.com"},
		{ID: "lexis", Name: "Lexis Nexis Malaysia", URL: "https://advance.lexis.com/myresearchhome/?pdmfid=1522468&identityprofileid=4B822D58284&crid=8feda149-0ea1-43f4-ad54-3ba3fe652308", Logo: "https://logo.clearbit.com/lexisnexis.com"},
		{ID: "westlaw", Name: "Westlaw (Asia)", URL: mockWebURL, Logo: "https://logo.clearbit.com/thomsonreuters.com"},
		{ID: "lawnet", Name: "Lawnet", URL: "https://www.lawnet.com.my/account/login", Logo: "https://logo.clearbit.com/lawnet.com.my"},
		{ID: "bar", Name: "Malaysian Bar", URL: mockWebURL, Logo: "https://logo.clearbit.com/malaysianbar.org.my"},
		{ID: "kehakiman", Name: "Badan Kehakiman", URL: mockWebURL, Logo: "https://logo.clearbit.com/kehakiman.gov.my"},
	}
}

func seedExamResources() []models.ExamResource {
	return []models.ExamResource{
		{ID: "pe1", Title: "Malaysian Legal System - Final Examination", Category: models.ExamCategoryPastYear, Year: "2023/2024", Semester: "Sem 1", URL: mockPDFURL},
		{ID: "pe2", Title: "Malaysian Legal System - Final Examination", Category: models.ExamCategoryPastYear, Year: "2022/2023", Semester: "Sem 2", URL: mockPDFURL},
		{ID: "pe3", Title: "Malaysian Legal System - Final Examination", Category: models.ExamCategoryPastYear, Year: "2022/2023", Semester: "Sem 1", URL: mockPDFURL},
		{ID: "pe4", Title: "Malaysian Legal System - Mid-Semester Test", Category: models.ExamCategoryPastYear, Year: "2023", Semester: "Sem 1", URL: mockPDFURL},
		{ID: "qb1", Title: "Topic 1: Overview - Essay Questions", Category: models.ExamCategoryModelQuestion, URL: mockPDFURL, TopicID: "t1"},
		{ID: "qb2", Title: "Topic 3: Sources of Law - Problem Questions", Category: models.ExamCategoryModelQuestion, URL: mockPDFURL, TopicID: "t3"},
		{ID: "qb3", Title: "Topic 5: Judiciary - Structured Questions", Category: models.ExamCategoryModelQuestion, URL: mockPDFURL, TopicID: "t5"},
		{ID: "ans1", Title: "Model Answers: Constitutional Supremacy", Category: models.ExamCategoryAnswerKey, URL: mockPDFURL, TopicID: "t3"},
	}
}

func seedLinks() []models.ExternalLink {
	return []models.ExternalLink{
		{ID: "m1", Category: "UniSZA", Title: "UniSZA e-Learning Platform", URL: "https://kelipfuha.unisza.edu.my/login/index.php"},
		{ID: "m2", Category: "Judiciary", Title: "Judiciary Virtual Tour", URL: mockWebURL},
		{ID: "m3", Category: "Research", Title: "Google Scholar", URL: "https://scholar.google.com"},
	}
}

func seedJudgments() []models.Judgment {
	return []models.Judgment{
		{
			ID:     "j1",
			Bil:    1,
			CaseNo: "05(RJ)-11-12/2024(P)",
			Court:  "Mahkamah Persekutuan",
			Parties: models.JudgmentParties{
				Appellant:  "Pendakwa Raya",
				Respondent: "JIVA A/L GOPAL KRISHNAN",
			},
			Keywords: []string{
				"Jenayah — Hukuman mati — Semakan hukuman mati — semakan hukuman mati selepas diberi pengampunan oleh Lembaga Pengampunan",
				"Perlembagaan Persekutuan — Perkara 42 — Pengampunan Diraja — Kuasa Lembaga Pengampunan — Keputusan pengampunan — Sama ada boleh dicabar melalui semakan kehakiman",
				"Mahkamah Persekutuan — Bidang kuasa — Bidang kuasa penyemakan sementara — Semakan hukuman mati — s. 2 Akta Semakan Hukuman Mati dan Penjara Sepanjang Hayat (Bidang Kuasa Sementara Mahkamah Persekutuan) 2023 (Akta 847)",
				"Amalan dan Prosedur — Kaedah 137 Kaedah-Kaedah Mahkamah Persekutuan 1995 — Permohonan semakan hukuman — Sama ada terpakai selepas pengampunan Diraja",
				"Lembaga Pengampunan — Kuasa perlembagaan — Keputusan mengubah hukuman mati — Kesan terhadap bidang kuasa Mahkamah Persekutuan",
				"Isu Undang-Undang — Sama ada seseorang yang telah dihukum mati dan kemudiannya memperoleh pengampunan di bawah Perkara 42 Perlembagaan Persekutuan berhak/boleh mengemukakan permohonan semakan semula hukuman mati — Sama ada Mahkamah Persekutuan mempunyai bidang kuasa penyemakan sementara di bawah s. 2 Akta 847 selepas hukuman diubah oleh Lembaga Pengampunan",
			},
			DecisionDate: "12/11/2025",
			UploadDate:   "18/12/2025",
			Quorum: []string{
				"YAA Datuk Seri Utama Wan Ahmad Farid Bin Wan Salleh",
				"YAA Dato' Abu Bakar Bin Jais",
				"YAA Tan Sri Hasnah binti Dato' Mohammed Hashim",
				"YAA Datuk Hajah Azizah binti Haji Nawawi",
				"YA Dato' Che Mohd Ruzima Bin Ghazali",
			},
			Judgments: []models.JudgmentFile{
				{Judge: "YA Dato' Che Mohd Ruzima Bin Ghazali", Type: "Alasan Penghakiman", Decision: "Sebulat Suara (Unanimous)", File: "Alasan Penghakiman.pdf"},
				{Judge: "YAA Datuk Seri Utama Wan Ahmad Farid Bin Wan Salleh", Type: "Supporting Judgment", Decision: "Sebulat Suara (Unanimous)", File: "supporting judgment.pdf"},
			},
		},
	}
}
