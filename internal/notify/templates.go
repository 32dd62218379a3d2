package notify

import "text/template"

// Message bodies are plain text, one template per (event, recipient) pair.
// Each template receives the record plus the restaurant display name.

var bookingCustomerBody = template.Must(template.New("booking_customer").Parse(`Hi {{.Booking.CustomerName}},

Thank you for your booking with {{.Restaurant}}!

Details:
- Date: {{.Booking.BookingDate}}
- Time: {{.Booking.BookingTime}}
- Party Size: {{.Booking.PartySize}}

We will confirm your reservation within 2 hours during business hours.

Best regards,
{{.Restaurant}} Team
`))

var bookingAdminBody = template.Must(template.New("booking_admin").Parse(`New booking submitted:

Name: {{.Booking.CustomerName}}
Email: {{.Booking.CustomerEmail}}
Phone: {{.Booking.CustomerPhone}}
Date: {{.Booking.BookingDate}}
Time: {{.Booking.BookingTime}}
Party Size: {{.Booking.PartySize}}
Special Requests: {{if .Booking.SpecialRequests}}{{.Booking.SpecialRequests}}{{else}}None{{end}}
`))

var contactCustomerBody = template.Must(template.New("contact_customer").Parse(`Hi {{.Contact.Name}},

Thank you for contacting {{.Restaurant}}!
We have received your message regarding "{{.Contact.Subject}}" and will get back to you within 24 hours.

Message you sent:
{{.Contact.Message}}

Best regards,
{{.Restaurant}} Team
`))

var contactAdminBody = template.Must(template.New("contact_admin").Parse(`New contact form submitted:

Name: {{.Contact.Name}}
Email: {{.Contact.Email}}
Phone: {{if .Contact.Phone}}{{.Contact.Phone}}{{else}}N/A{{end}}
Subject: {{.Contact.Subject}}
Message: {{.Contact.Message}}
`))

var reviewCustomerBody = template.Must(template.New("review_customer").Parse(`Hi {{.Review.CustomerName}},

Thank you for your review! We appreciate your feedback and are glad you shared your experience.

Your Review:
Rating: {{.Review.Rating}}/5
Comment: {{if .Review.Comment}}{{.Review.Comment}}{{else}}No comment{{end}}

Best regards,
{{.Restaurant}} Team
`))

var reviewAdminBody = template.Must(template.New("review_admin").Parse(`New review submitted:

Name: {{.Review.CustomerName}}
Email: {{.Review.CustomerEmail}}
Rating: {{.Review.Rating}}/5
Comment: {{if .Review.Comment}}{{.Review.Comment}}{{else}}No comment{{end}}
`))
