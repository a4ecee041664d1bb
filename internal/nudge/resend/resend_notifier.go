package resend

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"
)

type ResendNotifier struct {
	ApiKey string
	Email  string
	From   string
}

var emailTemplate = template.Must(template.New("email").Parse(`
<p>You have a {{.Streak}}-day streak going. These habits are still unmarked today:</p>
<ul>
{{range .Habits}}
  <li>{{.}}</li>
{{end}}
</ul>
`))

func renderBody(habits []string, streak int) (string, error) {
	data := struct {
		Habits []string
		Streak int
	}{
		Habits: habits,
		Streak: streak,
	}
	var buf bytes.Buffer
	if err := emailTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *ResendNotifier) SendNudge(habits []string, streak int) error {
	html, err := renderBody(habits, streak)
	if err != nil {
		return err
	}

	from := r.From
	if from == "" {
		from = "onboarding@resend.dev"
	}
	client := resend.NewClient(r.ApiKey)
	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{r.Email},
		Subject: fmt.Sprintf("Your %d-day streak ends tonight", streak),
		Html:    html,
	}

	_, err = client.Emails.Send(params)
	return err
}
