package resume

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iancoleman/orderedmap"
	"google.golang.org/genai"
	"gorm.io/gorm"

	"carebase-api/internal/staff"
)

type ResumeService struct {
	DB     *gorm.DB
	Client *genai.Client
}

// BuildResume assembles the resume document for a staff member from the
// staff row and employment records. Sections are emitted in a fixed
// order so the rendering client can walk the JSON top to bottom.
func (rs *ResumeService) BuildResume(facilityID, staffID string) (*orderedmap.OrderedMap, error) {
	var s staff.Staff
	if err := rs.DB.Where("facility_id = ? AND id = ?", facilityID, staffID).First(&s).Error; err != nil {
		return nil, err
	}

	records := []staff.EmploymentRecord{}
	if s.UserID != nil {
		if err := rs.DB.Where("user_id = ?", *s.UserID).
			Order("start_date asc").Find(&records).Error; err != nil {
			return nil, err
		}
	}

	doc := orderedmap.New()

	basic := orderedmap.New()
	basic.Set("name", s.Name)
	basic.Set("name_kana", s.NameKana)
	basic.Set("email", s.Email)
	basic.Set("phone", s.Phone)
	if s.PhotoURL != "" {
		basic.Set("photo_url", s.PhotoURL)
	}
	doc.Set("basic", basic)

	education := []string{}
	experience := []*orderedmap.OrderedMap{}
	qualificationSet := map[string]bool{}
	qualifications := []string{}

	addQualification := func(q string) {
		q = strings.TrimSpace(q)
		if q == "" || qualificationSet[q] {
			return
		}
		qualificationSet[q] = true
		qualifications = append(qualifications, q)
	}

	for _, q := range s.Qualifications {
		addQualification(q)
	}
	for _, r := range records {
		if r.Education != "" {
			education = append(education, r.Education)
		}

		entry := orderedmap.New()
		entry.Set("start_date", r.StartDate)
		if r.EndDate != nil {
			entry.Set("end_date", *r.EndDate)
		}
		entry.Set("role", r.Role)
		entry.Set("employment_type", r.EmploymentType)
		if r.Experience != "" {
			entry.Set("description", r.Experience)
		}
		experience = append(experience, entry)

		for _, q := range r.Qualifications {
			addQualification(q)
		}
	}

	doc.Set("education", education)
	doc.Set("experience", experience)
	doc.Set("qualifications", qualifications)
	doc.Set("self_pr", "")

	return doc, nil
}

// DraftSelfPR asks the model for a short self-PR paragraph based on the
// staff member's experience and qualifications.
func (rs *ResumeService) DraftSelfPR(ctx context.Context, facilityID, staffID string) (string, error) {
	if rs.Client == nil {
		return "", errors.New("self-PR drafting is not configured")
	}

	doc, err := rs.BuildResume(facilityID, staffID)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("以下は福祉施設で働くスタッフの職務経歴です。")
	sb.WriteString("この内容をもとに、履歴書の自己PR欄に書ける丁寧な日本語の文章を200字程度で作成してください。")
	sb.WriteString("経歴にない事実は加えないでください。\n\n")

	if v, ok := doc.Get("qualifications"); ok {
		if quals, ok := v.([]string); ok && len(quals) > 0 {
			sb.WriteString("資格: " + strings.Join(quals, "、") + "\n")
		}
	}
	if v, ok := doc.Get("experience"); ok {
		if entries, ok := v.([]*orderedmap.OrderedMap); ok {
			for _, e := range entries {
				role, _ := e.Get("role")
				start, _ := e.Get("start_date")
				sb.WriteString(fmt.Sprintf("- %v から %v\n", start, role))
				if desc, ok := e.Get("description"); ok {
					sb.WriteString(fmt.Sprintf("  %v\n", desc))
				}
			}
		}
	}

	genResp, err := rs.Client.Models.GenerateContent(ctx, "gemini-2.5-flash", []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: sb.String()},
			},
		},
	}, nil)
	if err != nil {
		return "", fmt.Errorf("generation error: %w", err)
	}

	var response string
	if len(genResp.Candidates) > 0 {
		for _, candidate := range genResp.Candidates {
			if candidate.Content != nil {
				for _, part := range candidate.Content.Parts {
					if part.Text != "" {
						response = part.Text
						break
					}
				}
			}
		}
	}
	if response == "" {
		return "", errors.New("no response from Gemini")
	}
	return response, nil
}
