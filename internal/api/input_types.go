package api

type credentialsInput struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	Name       string `json:"name" form:"name"`
	RememberMe bool   `json:"remember_me" form:"remember_me"`
}

type incidentPayload struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Symptoms string `json:"symptoms"`
	Notes    string `json:"notes"`
	Rating   *int   `json:"rating"`
}

type reportPayload struct {
	Date             string `json:"date"`
	Diet             string `json:"diet"`
	Exercise         string `json:"exercise"`
	Medicine         string `json:"medicine"`
	WaterIntake      string `json:"water_intake"`
	SodiumIntake     string `json:"sodium_intake"`
	FeelingMorning   string `json:"feeling_morning"`
	FeelingAfternoon string `json:"feeling_afternoon"`
	FeelingNight     string `json:"feeling_night"`
	OverallRating    *int   `json:"overall_rating"`
}

type analyzeRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}
