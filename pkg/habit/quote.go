package habit

import "time"

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}

var quotes = []Quote{
	{"Success is the sum of small efforts repeated day in and day out.", "Robert Collier"},
	{"The secret of getting ahead is getting started.", "Mark Twain"},
	{"You don't have to be great to start, but you have to start to be great.", "Zig Ziglar"},
	{"Small daily improvements over time lead to stunning results.", "Robin Sharma"},
	{"The only way to do great work is to love what you do.", "Steve Jobs"},
	{"Don't watch the clock; do what it does. Keep going.", "Sam Levenson"},
	{"The future depends on what you do today.", "Mahatma Gandhi"},
	{"Believe you can and you're halfway there.", "Theodore Roosevelt"},
	{"It does not matter how slowly you go as long as you do not stop.", "Confucius"},
	{"Your limitation, it's only your imagination.", "Unknown"},
	{"Great things never come from comfort zones.", "Unknown"},
	{"Success doesn't just find you. You have to go out and get it.", "Unknown"},
	{"The harder you work for something, the greater you'll feel when you achieve it.", "Unknown"},
	{"Dream bigger. Do bigger.", "Unknown"},
	{"Don't stop when you're tired. Stop when you're done.", "Unknown"},
	{"Wake up with determination. Go to bed with satisfaction.", "Unknown"},
	{"Do something today that your future self will thank you for.", "Sean Patrick Flanery"},
	{"Little things make big days.", "Unknown"},
	{"It's going to be hard, but hard does not mean impossible.", "Unknown"},
	{"Don't wait for opportunity. Create it.", "Unknown"},
}

// DailyQuote picks the same quote for every call on a given calendar day.
func DailyQuote(t time.Time) Quote {
	return quotes[t.YearDay()%len(quotes)]
}
