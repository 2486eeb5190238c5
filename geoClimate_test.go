package genvoronoimap

import "testing"

func TestClassifyTerrain(t *testing.T) {
	tests := []struct {
		cell Cell
		want Terrain
	}{
		{Cell{Water: true, Ocean: true, Shelf: true}, TerrainShelf},
		{Cell{Water: true, Ocean: true}, TerrainOcean},
		{Cell{Water: true, Elevation: 0.99}, TerrainLake},
		{Cell{Coast: true, Elevation: 0.99}, TerrainCoast},
		{Cell{Elevation: 0.95}, TerrainPeak},
		{Cell{Elevation: 0.94}, TerrainMountain},
		{Cell{Elevation: 0.86}, TerrainMountain},
		{Cell{Elevation: 0.85}, TerrainHill},
		{Cell{Elevation: 0.56}, TerrainHill},
		{Cell{Elevation: 0.55}, TerrainPlain},
		{Cell{Elevation: -0.2}, TerrainPlain},
	}
	for _, tt := range tests {
		if got := classifyTerrain(&tt.cell); got != tt.want {
			t.Errorf("classifyTerrain(%+v) = %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestClassifyBiome(t *testing.T) {
	tests := []struct {
		cell Cell
		want Biome
	}{
		{Cell{Water: true, Ocean: true, Elevation: 0.9}, BiomeOcean},
		{Cell{Water: true, Elevation: 0.9}, BiomeMountain},
		{Cell{Elevation: 0.9, Temperature: 0.5, Moisture: 0.5}, BiomeMountain},
		{Cell{Water: true, Elevation: 0.2}, BiomeLake},
		{Cell{Temperature: 0.05, Moisture: 0.0}, BiomeIce},
		{Cell{Temperature: 0.1, Moisture: 1.0}, BiomeIce},
		{Cell{Temperature: 0.15, Moisture: 0.1}, BiomeDesert},
		{Cell{Temperature: 0.15, Moisture: 0.11}, BiomeTundra},
		{Cell{Temperature: 0.25, Moisture: 0.12}, BiomeDesert},
		{Cell{Temperature: 0.25, Moisture: 0.2}, BiomeGrassland},
		{Cell{Temperature: 0.3, Moisture: 0.5}, BiomeTaiga},
		{Cell{Temperature: 0.5, Moisture: 0.1}, BiomeDesert},
		{Cell{Temperature: 0.5, Moisture: 0.3}, BiomeGrassland},
		{Cell{Temperature: 0.5, Moisture: 0.6}, BiomeForest},
		{Cell{Temperature: 0.75, Moisture: 0.9}, BiomeTemperateRainForest},
		{Cell{Temperature: 0.8, Moisture: 0.2}, BiomeDesert},
		{Cell{Temperature: 0.8, Moisture: 0.35}, BiomeSavanna},
		{Cell{Temperature: 0.9, Moisture: 0.5}, BiomeTropicalSeasonalForest},
		{Cell{Temperature: 1.0, Moisture: 1.0}, BiomeTropicalRainForest},
		{Cell{Temperature: 1.2, Moisture: 0.5}, BiomeDead},
		{Cell{Temperature: 0.5, Moisture: 1.5}, BiomeDead},
	}
	for _, tt := range tests {
		if got := classifyBiome(&tt.cell); got != tt.want {
			t.Errorf("classifyBiome(%+v) = %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestLabels(t *testing.T) {
	if len(Terrains) != len(terrainNames) || len(Biomes) != len(biomeNames) {
		t.Fatalf("label lists are incomplete")
	}
	if BiomeTemperateRainForest.String() != "temperate rain forest" || TerrainShelf.String() != "shelf" {
		t.Fatalf("unexpected labels")
	}
	if Biome(-1).String() != "unknown" || Terrain(99).String() != "unknown" {
		t.Fatalf("out of range labels")
	}
	for _, b := range Biomes {
		if _, ok := biomeColors[b]; !ok {
			t.Errorf("biome %v has no color", b)
		}
	}
	for _, tr := range Terrains {
		if _, ok := terrainColors[tr]; !ok {
			t.Errorf("terrain %v has no color", tr)
		}
	}
}
