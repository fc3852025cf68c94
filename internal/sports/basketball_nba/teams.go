package basketball_nba

import "github.com/CobSammich/nba-scores-cli/pkg/models"

// NBA team colours, keyed by the display name the scoreboard page uses
var nbaTeamColors = map[string]models.Color{
	"Atlanta":       {R: 225, G: 68, B: 52},
	"Boston":        {R: 0, G: 122, B: 51},
	"Brooklyn":      {R: 0, G: 0, B: 0},
	"Charlotte":     {R: 29, G: 17, B: 96},
	"Chicago":       {R: 206, G: 17, B: 65},
	"Cleveland":     {R: 134, G: 0, B: 56},
	"Dallas":        {R: 0, G: 83, B: 188},
	"Denver":        {R: 13, G: 34, B: 64},
	"Detroit":       {R: 200, G: 16, B: 46},
	"Golden State":  {R: 29, G: 66, B: 138},
	"Houston":       {R: 206, G: 17, B: 65},
	"Indiana":       {R: 0, G: 45, B: 98},
	"LA Clippers":   {R: 200, G: 16, B: 46},
	"LA Lakers":     {R: 85, G: 37, B: 130},
	"Memphis":       {R: 93, G: 118, B: 169},
	"Miami":         {R: 152, G: 0, B: 46},
	"Milwaukee":     {R: 0, G: 71, B: 27},
	"Minnesota":     {R: 12, G: 35, B: 64},
	"New Orleans":   {R: 0, G: 22, B: 65},
	"New York":      {R: 0, G: 107, B: 182},
	"Oklahoma City": {R: 0, G: 125, B: 195},
	"Orlando":       {R: 0, G: 125, B: 197},
	"Philadelphia":  {R: 0, G: 107, B: 182},
	"Phoenix":       {R: 229, G: 95, B: 32},
	"Portland":      {R: 224, G: 58, B: 62},
	"Sacramento":    {R: 91, G: 43, B: 130},
	"San Antonio":   {R: 196, G: 206, B: 211},
	"Toronto":       {R: 206, G: 17, B: 65},
	"Utah":          {R: 0, G: 43, B: 92},
	"Washington":    {R: 0, G: 43, B: 92},
}

// GetTeamColor returns the colour for a team's display name
func GetTeamColor(name string) (models.Color, bool) {
	c, ok := nbaTeamColors[name]
	return c, ok
}
