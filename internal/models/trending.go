package models

type TrendingEntry struct {
	SubjectKey string `json:"key" bson:"_id"`
	Count      int64  `json:"count" bson:"count"`
}

type TrendingItem struct {
	Title    string `json:"title"`
	Href     string `json:"href"`
	Subtitle string `json:"subtitle,omitempty"`
	Scope    Scope  `json:"scope"`
	Count    int64  `json:"count"`
}
