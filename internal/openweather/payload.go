package openweather

// Payload mirrors the provider's current-weather response. Every sub-object
// and leaf is optional; absent pieces decode to nil so normalization can run
// a plain chain of nil checks over a sparse body.
type Payload struct {
	Name    string      `json:"name"`
	Sys     *Sys        `json:"sys"`
	Main    *Main       `json:"main"`
	Weather []Condition `json:"weather"`
	Wind    *Wind       `json:"wind"`
	Clouds  *Clouds     `json:"clouds"`
	Dt      *int64      `json:"dt"`
}

type Sys struct {
	Country *string `json:"country"`
}

type Main struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	TempMin   *float64 `json:"temp_min"`
	TempMax   *float64 `json:"temp_max"`
	Pressure  *int64   `json:"pressure"`
	Humidity  *int64   `json:"humidity"`
}

type Condition struct {
	Description *string `json:"description"`
}

type Wind struct {
	Speed *float64 `json:"speed"`
}

type Clouds struct {
	All *int64 `json:"all"`
}
