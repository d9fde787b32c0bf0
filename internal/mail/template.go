package mail

import (
	"fmt"
	"html/template"
	"strings"

	"weekly-meal-planner/internal/menu"
	"weekly-meal-planner/internal/pricing"
)

var weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayMeal pairs a weekday label with its selected meal.
type DayMeal struct {
	Day   string
	Name  string
	Image string
}

type emailData struct {
	Days       []DayMeal
	Groceries  []pricing.EnrichedIngredient
	Additional []string
	Images     template.HTML
}

const emailTemplate = `<!DOCTYPE html>
<html>
<head>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 0;
            background-color: #f4f4f4;
        }
        .container {
            width: 600px;
            margin: 0 auto;
            background-color: #fff;
            padding: 0px;
        }
        .header {
            background-color: #5bc0de;
            color: white;
            text-align: center;
            padding: 30px 0;
            font-size: 40px;
            font-weight: bold;
        }
        .day {
            position: relative;
            margin: 20px 0;
            height: 150px;
            background-size: cover;
            background-position: center;
        }
        .day p {
            position: absolute;
            top: 120px;
            left: 0;
            width: 60%;
            background-color: rgba(255, 255, 255, 0.8);
            padding: 5px 30px;
            font-size: 18px;
            display: inline-block;
            margin: 0;
            box-sizing: border-box;
        }
        .grocery-list {
            background-color: #5bc0de;
            padding: 10px;
            color: white;
            margin: 0px auto;
            font-size: 16px;
            width: 75%;
            text-align: center;
        }
        .grocery-list ul {
            list-style-type: none;
            padding: 0;
        }
        .grocery-list ul li {
            margin: 5px 0;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            This Week's Menu!
        </div>
{{- range .Days}}
        <div class="day" style="background-image: url('{{.Image}}');">
            <p><strong>{{.Day}}:</strong> {{.Name}}</p>
        </div>
{{- end}}
        <div class="grocery-list">
            <h3><b><p>Grocery List</p></b></h3>
            <ul>
{{- range .Groceries}}
                <li>{{.Name}}: {{.Price}}</li>
{{- end}}
            </ul>
        </div>
        <div class="grocery-list">
            <h3><b><p>Additional Grocery List</p></b></h3>
            <ul>
{{- range .Additional}}
                <li>{{.}}</li>
{{- end}}
            </ul>
        </div>
        {{.Images}}
    </div>
</body>
</html>`

var emailTmpl = template.Must(template.New("email").Parse(emailTemplate))

// Render produces the HTML email body for a weekly plan. Day labels run
// Monday onward, one weekday per selected meal. The images blob is markup
// built by the enrichment engine and is inserted as-is.
func Render(selection []menu.Meal, groceries []pricing.EnrichedIngredient, additional []string, images string) (string, error) {
	days := make([]DayMeal, 0, len(selection))
	for i, m := range selection {
		days = append(days, DayMeal{
			Day:   weekdays[i%len(weekdays)],
			Name:  m.Name,
			Image: m.Image,
		})
	}

	data := emailData{
		Days:       days,
		Groceries:  groceries,
		Additional: additional,
		Images:     template.HTML(images),
	}

	var sb strings.Builder
	if err := emailTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render email body: %w", err)
	}
	return sb.String(), nil
}
