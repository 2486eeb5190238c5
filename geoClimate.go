package genvoronoimap

// Terrain is the terrain type of a cell.
type Terrain int

// Terrain types.
const (
	TerrainPlain Terrain = iota
	TerrainShelf
	TerrainOcean
	TerrainLake
	TerrainCoast
	TerrainPeak
	TerrainMountain
	TerrainHill
)

var terrainNames = [...]string{
	TerrainPlain:    "plain",
	TerrainShelf:    "shelf",
	TerrainOcean:    "ocean",
	TerrainLake:     "lake",
	TerrainCoast:    "coast",
	TerrainPeak:     "peak",
	TerrainMountain: "mountain",
	TerrainHill:     "hill",
}

func (t Terrain) String() string {
	if t < 0 || int(t) >= len(terrainNames) {
		return "unknown"
	}
	return terrainNames[t]
}

// Terrains lists all terrain types.
var Terrains = []Terrain{TerrainShelf, TerrainOcean, TerrainLake, TerrainCoast, TerrainPeak, TerrainMountain, TerrainHill, TerrainPlain}

// Elevation thresholds for land terrain, evaluated in order.
var terrainElevationBands = []struct {
	min     float64
	terrain Terrain
}{
	{0.94, TerrainPeak},
	{0.85, TerrainMountain},
	{0.55, TerrainHill},
}

func classifyTerrain(c *Cell) Terrain {
	switch {
	case c.Water && c.Ocean && c.Shelf:
		return TerrainShelf
	case c.Water && c.Ocean:
		return TerrainOcean
	case c.Water:
		return TerrainLake
	case c.Coast:
		return TerrainCoast
	}
	for _, b := range terrainElevationBands {
		if c.Elevation > b.min {
			return b.terrain
		}
	}
	return TerrainPlain
}

func (m *Map) assignTerrain() {
	for _, c := range m.Cells {
		c.Terrain = classifyTerrain(c)
	}
}

// Biome is the biome of a cell.
type Biome int

// Biomes.
const (
	BiomeDead Biome = iota
	BiomeOcean
	BiomeMountain
	BiomeLake
	BiomeIce
	BiomeDesert
	BiomeTundra
	BiomeGrassland
	BiomeTaiga
	BiomeForest
	BiomeTemperateRainForest
	BiomeSavanna
	BiomeTropicalSeasonalForest
	BiomeTropicalRainForest
)

var biomeNames = [...]string{
	BiomeDead:                   "dead",
	BiomeOcean:                  "ocean",
	BiomeMountain:               "mountain",
	BiomeLake:                   "lake",
	BiomeIce:                    "ice",
	BiomeDesert:                 "desert",
	BiomeTundra:                 "tundra",
	BiomeGrassland:              "grassland",
	BiomeTaiga:                  "taiga",
	BiomeForest:                 "forest",
	BiomeTemperateRainForest:    "temperate rain forest",
	BiomeSavanna:                "savanna",
	BiomeTropicalSeasonalForest: "tropical seasonal forest",
	BiomeTropicalRainForest:     "tropical rain forest",
}

func (b Biome) String() string {
	if b < 0 || int(b) >= len(biomeNames) {
		return "unknown"
	}
	return biomeNames[b]
}

// Biomes lists all biomes.
var Biomes = []Biome{
	BiomeOcean, BiomeMountain, BiomeLake, BiomeIce, BiomeDesert, BiomeTundra,
	BiomeGrassland, BiomeTaiga, BiomeForest, BiomeTemperateRainForest,
	BiomeSavanna, BiomeTropicalSeasonalForest, BiomeTropicalRainForest, BiomeDead,
}

type moistureBand struct {
	max   float64
	biome Biome
}

type temperatureBand struct {
	max      float64
	moisture []moistureBand
}

// biomeTable is evaluated in order, the first band with a maximum not below
// the value wins.
var biomeTable = []temperatureBand{
	{0.1, []moistureBand{
		{1.0, BiomeIce},
	}},
	{0.2, []moistureBand{
		{0.1, BiomeDesert},
		{1.0, BiomeTundra},
	}},
	{0.3, []moistureBand{
		{0.12, BiomeDesert},
		{0.22, BiomeGrassland},
		{1.0, BiomeTaiga},
	}},
	{0.75, []moistureBand{
		{0.15, BiomeDesert},
		{0.3, BiomeGrassland},
		{0.6, BiomeForest},
		{1.0, BiomeTemperateRainForest},
	}},
	{1.0, []moistureBand{
		{0.28, BiomeDesert},
		{0.4, BiomeSavanna},
		{0.6, BiomeTropicalSeasonalForest},
		{1.0, BiomeTropicalRainForest},
	}},
}

// mountainElevation is the elevation above which land is always mountain.
const mountainElevation = 0.85

func classifyBiome(c *Cell) Biome {
	switch {
	case c.Ocean:
		return BiomeOcean
	case c.Elevation > mountainElevation:
		return BiomeMountain
	case c.Water:
		return BiomeLake
	}
	return lookupBiome(c.Temperature, c.Moisture)
}

// lookupBiome returns the land biome for the given temperature and moisture.
func lookupBiome(temperature, moisture float64) Biome {
	for _, tb := range biomeTable {
		if temperature > tb.max {
			continue
		}
		for _, mb := range tb.moisture {
			if moisture <= mb.max {
				return mb.biome
			}
		}
		break
	}
	return BiomeDead
}

func (m *Map) assignBiomes() {
	for _, c := range m.Cells {
		c.Biome = classifyBiome(c)
	}
}
