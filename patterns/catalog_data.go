package patterns

// stillLifeTemplates lists the built-in catalog in matching order. Offsets are
// (row, column) relative to the anchor, which is always the first live cell of
// the shape in raster order. Every orientation is spelled out on its own.
var stillLifeTemplates = []Template{
	{
		Figure:      Block,
		Symmetrical: true,
		Alive: []Offset{
			{0, 0}, {0, 1},
			{1, 0}, {1, 1},
		},
		Dead: []Offset{
			{-1, -1}, {-1, 0}, {-1, 1}, {-1, 2},
			{0, -1}, {0, 2},
			{1, -1}, {1, 2},
			{2, -1}, {2, 0}, {2, 1}, {2, 2},
		},
	},
	{
		Figure:      Tub,
		Symmetrical: true,
		Alive: []Offset{
			{0, 0},
			{1, -1}, {1, 1},
			{2, 0},
		},
		Dead: []Offset{
			{-1, -1}, {-1, 0}, {-1, 1},
			{0, -2}, {0, -1}, {0, 1}, {0, 2},
			{1, -2}, {1, 0}, {1, 2},
			{2, -2}, {2, -1}, {2, 1}, {2, 2},
			{3, -1}, {3, 0}, {3, 1},
		},
	},
	{
		Figure:      Beehive1,
		Symmetrical: true,
		Alive: []Offset{
			{0, 0},
			{1, -1}, {1, 1},
			{2, -1}, {2, 1},
			{3, 0},
		},
		Dead: []Offset{
			{-1, -1}, {-1, 0}, {-1, 1},
			{0, -2}, {0, -1}, {0, 1}, {0, 2},
			{1, -2}, {1, 0}, {1, 2},
			{2, -2}, {2, 0}, {2, 2},
			{3, -2}, {3, -1}, {3, 1}, {3, 2},
			{4, -1}, {4, 0}, {4, 1},
		},
	},
	{
		Figure:      Beehive2,
		Symmetrical: true,
		Alive: []Offset{
			{0, 0}, {0, 1},
			{1, -1}, {1, 2},
			{2, 0}, {2, 1},
		},
		Dead: []Offset{
			{-1, -1}, {-1, 0}, {-1, 1}, {-1, 2},
			{0, -2}, {0, -1}, {0, 2},
			{1, -2}, {1, 0}, {1, 1},
			{2, -2}, {2, -1}, {2, 2},
			{3, -1}, {3, 0}, {3, 1}, {3, 2},
			{4, -2}, {4, -1}, {4, 0}, {4, 1}, {4, 2},
		},
	},
	{
		Figure:      Pond,
		Symmetrical: true,
		Alive: []Offset{
			{0, 0}, {0, 1},
			{1, -1}, {1, 2},
			{2, -1}, {2, 2},
			{3, 0}, {3, 1},
		},
		Dead: []Offset{
			{-1, -1}, {-1, 0}, {-1, 1}, {-1, 2},
			{0, -2}, {0, -1}, {0, 2},
			{1, -2}, {1, 0}, {1, 1},
			{2, -2}, {2, 0}, {2, 1},
			{3, -2}, {3, -1}, {3, 2},
			{4, -1}, {4, 0}, {4, 1}, {4, 2},
		},
	},
	{
		Figure:      Ship1,
		Symmetrical: false,
		Alive: []Offset{
			{0, 0}, {0, 1},
			{1, 0}, {1, 2},
			{2, 1}, {2, 2},
		},
		Dead: []Offset{
			{-1, -1}, {-1, 0}, {-1, 1}, {-1, 2},
			{0, -1}, {0, 2}, {0, 3},
			{1, -1}, {1, 1}, {1, 3},
			{2, -1}, {2, 0}, {2, 3},
			{3, 0}, {3, 1}, {3, 2}, {3, 3},
		},
	},
	{
		Figure:      Ship2,
		Symmetrical: false,
		Alive: []Offset{
			{0, 0}, {0, 1},
			{1, -1}, {1, 1},
			{2, -1}, {2, 0},
		},
		Dead: []Offset{
			{-1, -1}, {-1, 0}, {-1, 1}, {-1, 2},
			{0, -2}, {0, -1}, {0, 2},
			{1, -2}, {1, 0}, {1, 2},
			{2, -2}, {2, 1}, {2, 2},
			{3, -2}, {3, -1}, {3, 0}, {3, 1},
		},
	},
	{
		Figure:      Loaf1,
		Symmetrical: false,
		Alive: []Offset{
			{0, 0}, {0, 1},
			{1, -1}, {1, 2},
			{2, 0}, {2, 2},
			{3, 1},
		},
		Dead: []Offset{
			{-1, -1}, {-1, 0}, {-1, 1}, {-1, 2}, {-1, 3},
			{0, -2}, {0, -1}, {0, 2}, {0, 3},
			{1, -2}, {1, 0}, {1, 1}, {1, 3},
			{2, -2}, {2, -1}, {2, 1}, {2, 3},
			{3, -1}, {3, 0}, {3, 2}, {3, 3},
			{4, 0}, {4, 1}, {4, 2},
		},
	},
	{
		Figure:      Loaf2,
		Symmetrical: false,
		Alive: []Offset{
			{0, 0}, {0, 1},
			{1, -1}, {1, 2},
			{2, -1}, {2, 1},
			{3, 0},
		},
		Dead: []Offset{
			{-1, -1}, {-1, 0}, {-1, 1}, {-1, 2},
			{0, -2}, {0, -1}, {0, 2}, {0, 3},
			{1, -2}, {1, 0}, {1, 1}, {1, 3},
			{2, -2}, {2, 0}, {2, 2}, {2, 3},
			{3, -2}, {3, -1}, {3, 1}, {3, 2},
			{4, -1}, {4, 0}, {4, 1}, {4, 3},
		},
	},
	{
		Figure:      Loaf3,
		Symmetrical: false,
		Alive: []Offset{
			{0, 0},
			{1, -1}, {1, 1},
			{2, -1}, {2, 2},
			{3, 0}, {3, 1},
		},
		Dead: []Offset{
			{-1, -1}, {-1, 0}, {-1, 1},
			{0, -2}, {0, -1}, {0, 1}, {0, 2},
			{1, -2}, {1, 0}, {1, 2}, {1, 3},
			{2, -2}, {2, 0}, {2, 1}, {2, 3},
			{3, -2}, {3, -1}, {3, 2}, {3, 3},
			{4, -2}, {4, -1}, {4, 0}, {4, 1}, {4, 2},
		},
	},
	{
		Figure:      Loaf4,
		Symmetrical: false,
		Alive: []Offset{
			{0, 0},
			{1, -1}, {1, 1},
			{2, -2}, {2, 1},
			{3, -1}, {3, 0},
		},
		Dead: []Offset{
			{-1, -1}, {-1, 0}, {-1, 1},
			{0, -2}, {0, -1}, {0, 1}, {0, 2},
			{1, -3}, {1, -2}, {1, 0}, {1, 2},
			{2, -3}, {2, -1}, {2, 0}, {2, 2},
			{3, -3}, {3, -2}, {3, 1}, {3, 2},
			{4, -3}, {4, -2}, {4, -1}, {4, 0}, {4, 1},
		},
	},
	{
		Figure:      Boat1,
		Symmetrical: false,
		Alive: []Offset{
			{0, 0},
			{1, -1}, {1, 1},
			{2, 0}, {2, 1},
		},
		Dead: []Offset{
			{-1, -1}, {-1, 0}, {-1, 1},
			{0, -2}, {0, -1}, {0, 1}, {0, 2},
			{1, -2}, {1, 0}, {1, 2},
			{2, -2}, {2, -1}, {2, 2},
			{3, -1}, {3, 0}, {3, 1}, {3, 2},
		},
	},
	{
		Figure:      Boat2,
		Symmetrical: false,
		Alive: []Offset{
			{0, 0}, {0, 1},
			{1, 0}, {1, 2},
			{2, 1},
		},
		Dead: []Offset{
			{-1, -1}, {-1, 0}, {-1, 1}, {-1, 2},
			{0, -1}, {0, 2}, {0, 3},
			{1, -1}, {1, 1}, {1, 3},
			{2, -1}, {2, 0}, {2, 2}, {2, 3},
			{3, 0}, {3, 1}, {3, 2},
		},
	},
	{
		Figure:      Boat3,
		Symmetrical: false,
		Alive: []Offset{
			{0, 0}, {0, 1},
			{1, -1}, {1, 1},
			{2, 0},
		},
		Dead: []Offset{
			{-1, -1}, {-1, 0}, {-1, 1}, {-1, 2},
			{0, -2}, {0, -1}, {0, 2},
			{1, -2}, {1, 0}, {1, 2},
			{2, -2}, {2, -1}, {2, 1}, {2, 2},
			{3, -1}, {3, 0}, {3, 1},
		},
	},
	{
		Figure:      Boat4,
		Symmetrical: false,
		Alive: []Offset{
			{0, 0},
			{1, -1}, {1, 1},
			{2, -1}, {2, 0},
		},
		Dead: []Offset{
			{-1, -1}, {-1, 0}, {-1, 1},
			{0, -2}, {0, -1}, {0, 1}, {0, 2},
			{1, -2}, {1, 0}, {1, 2},
			{2, -2}, {2, 1}, {2, 2},
			{3, -2}, {3, -1}, {3, 0}, {3, 1},
		},
	},
	{
		Figure:      Blinker1,
		Symmetrical: true,
		Alive: []Offset{
			{0, 0},
			{1, 0},
			{2, 0},
		},
		Dead: []Offset{
			{-1, -1}, {-1, 0}, {-1, 1},
			{0, -1}, {0, 1},
			{1, -1}, {1, 1},
			{2, -1}, {2, 1},
			{3, -1}, {3, 0}, {3, 1},
		},
	},
	{
		Figure:      Blinker2,
		Symmetrical: true,
		Alive: []Offset{
			{0, 0}, {0, 1}, {0, 2},
		},
		Dead: []Offset{
			{-1, -1}, {-1, 0}, {-1, 1}, {-1, 2}, {-1, 3},
			{0, -1}, {0, 3},
			{1, -1}, {1, 0}, {1, 1}, {1, 2}, {1, 3},
		},
	},
	{
		Figure:      Eight1,
		Symmetrical: false,
		Alive: []Offset{
			{0, 0},
			{1, -1},
		},
		Dead: []Offset{
			{-1, -1}, {-1, 0}, {-1, 1},
			{0, -2}, {0, -1}, {0, 1},
			{1, -2}, {1, 0}, {1, 1},
			{2, -2}, {2, -1}, {2, 0}, {2, 1},
		},
	},
	{
		Figure:      Eight2,
		Symmetrical: false,
		Alive: []Offset{
			{0, 0},
			{1, 1},
		},
		Dead: []Offset{
			{-1, -1}, {-1, 0}, {-1, 1},
			{0, -1}, {0, 1}, {0, 2},
			{1, -1}, {1, 0}, {1, 2},
			{2, 0}, {2, 1}, {2, 2},
		},
	},
}
