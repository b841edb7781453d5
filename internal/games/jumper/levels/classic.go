package levels

import "github.com/vovakirdan/pixel-jumper/internal/registry"

// ClassicID is the ID of the built-in campaign.
const ClassicID = "classic"

func init() {
	registry.Register(ClassicID, Classic)
}

// Classic returns the built-in seven level campaign.
func Classic() registry.Pack {
	return registry.Pack{
		ID:    ClassicID,
		Title: "Classic",
		Levels: []registry.Level{
			{
				Name: "First Steps",
				Plan: []string{
					"                      ",
					"                      ",
					"  x              = x  ",
					"  x         o o    x  ",
					"  x @      xxxxx   x  ",
					"  xxxxx            x  ",
					"      x!!!!!!!!!!!!x  ",
					"      xxxxxxxxxxxxxx  ",
				},
			},
			{
				Name: "Stepping Stones",
				Plan: []string{
					"                              ",
					"  x                        x  ",
					"  x          o             x  ",
					"  x         xxx     o  o   x  ",
					"  x    o           xxxxx   x  ",
					"  x   xxx                  x  ",
					"  x @        |             x  ",
					"  xxxx!!!!!!!!!!!!!!!!!!!xxx  ",
					"     xxxxxxxxxxxxxxxxxxxxx    ",
				},
			},
			{
				Name: "Dripping Cave",
				Plan: []string{
					"xxxxxxxxxxxxxxxxxxxxxxxxxxxx",
					"x      v       v      v    x",
					"x                          x",
					"x   o      o      o     o  x",
					"x  xxx    xxx    xxx   xxx x",
					"x                          x",
					"x @                        x",
					"xxxxxx!!xxxxx!!!xxxxx!!xxxxx",
				},
			},
			{
				Name: "Lava Lift",
				Plan: []string{
					"                         ",
					"  x        o o        x  ",
					"  x       xxxxx       x  ",
					"  x  |             |  x  ",
					"  x                   x  ",
					"  x    o    =    o    x  ",
					"  x   xxx       xxx   x  ",
					"  x @               o x  ",
					"  xxxxx!!!!!!!!!!!xxxxx  ",
					"      xxxxxxxxxxxxx      ",
				},
			},
			{
				Name: "Crossfire",
				Plan: []string{
					"                                ",
					"  x                          x  ",
					"  x   o   =       =     o    x  ",
					"  x  xxx        o       xxx  x  ",
					"  x           xxxxx          x  ",
					"  x      |            |      x  ",
					"  x @  xxxx    v v    xxxx o x  ",
					"  xxxxxx!!!!!!!!!!!!!!!!xxxxxx  ",
					"       xxxxxxxxxxxxxxxxxx       ",
				},
			},
			{
				Name: "The Climb",
				Plan: []string{
					"                      ",
					"  x        o       x  ",
					"  x      xxxxx     x  ",
					"  x            =   x  ",
					"  x   o        xxx x  ",
					"  x  xxx           x  ",
					"  x         |   o  x  ",
					"  x        xxx xxx x  ",
					"  x  o             x  ",
					"  x xxxx    v      x  ",
					"  x @         xxx  x  ",
					"  xxxxxx!!!!!!!!!!xx  ",
				},
			},
			{
				Name: "Molten Core",
				Plan: []string{
					"xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx",
					"x   v    v    v    v    v    v   x",
					"x                                x",
					"x  o     =          =         o  x",
					"x xxx                        xxx x",
					"x       o    xxxxxxxx    o       x",
					"x      xxx              xxx      x",
					"x   |                        |   x",
					"x @          o      o            x",
					"xxxxxx!!!!xxxxx!!!!xxxxx!!!!xxxxxx",
				},
			},
		},
	}
}
