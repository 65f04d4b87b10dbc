package notification

import (
	"fmt"
	"strings"

	"lostfound/internal/domain/entity"
)

const notSpecified = "Not specified"

// Message is a job rendered for both channels.
type Message struct {
	Subject   string
	Body      string
	PushTitle string
	PushBody  string
}

// Render builds the email and push text for a job.
func Render(job *entity.NotificationJob) Message {
	p := job.Payload
	name := orDefault(job.RecipientName, "there")
	item := orDefault(p.ItemName, "your item")

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", name)

	var msg Message
	switch job.Kind {
	case entity.JobKindLostConfirmation:
		msg.Subject = "Lost Item Confirmation"
		msg.PushTitle = "Lost report received"
		msg.PushBody = fmt.Sprintf("We will let you know when someone finds %s.", item)
		fmt.Fprintf(&b, "We received your lost item report. We will notify you as soon as a matching item is turned in.\n\n")
	case entity.JobKindFoundConfirmation:
		msg.Subject = "Found Item Confirmation"
		msg.PushTitle = "Thanks for reporting"
		msg.PushBody = fmt.Sprintf("Your found report for %s is live.", item)
		fmt.Fprintf(&b, "Thank you for reporting a found item. We will contact you if its owner comes forward.\n\n")
	case entity.JobKindMatchAlert:
		msg.Subject = "Match Notification"
		msg.PushTitle = "Possible match found"
		if p.Role == entity.RoleFinder {
			msg.PushBody = fmt.Sprintf("Someone may have lost the %s you found.", item)
			fmt.Fprintf(&b, "A lost item report looks like the item you found.\n\n")
		} else {
			msg.PushBody = fmt.Sprintf("A found item may be your %s.", item)
			fmt.Fprintf(&b, "Good news! A found item looks like the one you lost.\n\n")
		}
		fmt.Fprintf(&b, "Matched report: %s\nReported at: %s\nMatch score: %.0f%%\n\n",
			orDefault(p.CounterpartTitle, notSpecified), orDefault(p.CounterpartPlace, notSpecified), p.Score*100)
	default:
		msg.Subject = "Lost & Found Update"
		msg.PushTitle = "Lost & Found"
		msg.PushBody = fmt.Sprintf("There is an update on %s.", item)
	}

	fmt.Fprintf(&b, "Item: %s\nCategory: %s\nLocation: %s\nDescription: %s\n\n",
		item,
		orDefault(string(p.Category), notSpecified),
		orDefault(p.Location, notSpecified),
		orDefault(p.Description, notSpecified),
	)
	b.WriteString("Campus Lost & Found\n")
	msg.Body = b.String()

	return msg
}

// pushData is the data payload attached to push messages.
func pushData(job *entity.NotificationJob) map[string]string {
	data := map[string]string{
		"job_id":  job.ID.String(),
		"kind":    string(job.Kind),
		"item_id": job.ItemID.String(),
	}
	if job.MatchID != nil {
		data["match_id"] = job.MatchID.String()
	}
	if job.Payload.CounterpartID != "" {
		data["counterpart_id"] = job.Payload.CounterpartID
	}

	return data
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}

	return s
}
