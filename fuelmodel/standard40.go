package fuelmodel

// standard40 is the Scott & Burgan (2005, RMRS-GTR-153) 40 fuel model
// set, seeded at catalog construction alongside standard13. Grouping and
// numbering (GR1-GR9 101-109, GS1-GS4 121-124, SH1-SH9 141-149, TU1-TU5
// 161-165, TL1-TL9 181-189, SB1-SB4 201-204) follows the standard
// convention used throughout BehavePlus and FARSITE. A model is dynamic
// whenever it carries a live herbaceous load, per spec.md's definition
// of dynamic curing transfer; SAVR fields for unused life classes are
// filled with a nonzero placeholder (1500 ft²/ft³, or 1600 for the
// live woody class of SH2, SH5, TL9 and SB4) rather than left at
// zero, since the catalog's invariant requires SAVR > 0 for every
// defined slot. Loads are published in tons/acre; the table below has
// already been converted to lb/ft² (× 2000/43560) at transcription
// time, since standardRecord stores loads in lb/ft² directly.
var standard40 = []standardRecord{
	// Grass (GR) - dynamic
	{101, "GR1", "Short, sparse, dry climate grass", 0.4, 15, 0.004591, 0, 0, 0.013774, 0, 2200, 2000, 1500, true},
	{102, "GR2", "Low load, dry climate grass", 1.0, 15, 0.004591, 0, 0, 0.045914, 0, 2000, 1800, 1500, true},
	{103, "GR3", "Low load, very coarse, humid climate grass", 2.0, 30, 0.004591, 0.018365, 0, 0.068871, 0, 1500, 1300, 1500, true},
	{104, "GR4", "Moderate load, dry climate grass", 2.0, 15, 0.011478, 0, 0, 0.087236, 0, 2000, 1800, 1500, true},
	{105, "GR5", "Low load, humid climate grass", 1.5, 40, 0.018365, 0, 0, 0.114784, 0, 1800, 1600, 1500, true},
	{106, "GR6", "Moderate load, humid climate grass", 1.5, 40, 0.004591, 0, 0, 0.156107, 0, 2200, 2000, 1500, true},
	{107, "GR7", "High load, dry climate grass", 3.0, 15, 0.045914, 0, 0, 0.247934, 0, 2000, 1800, 1500, true},
	{108, "GR8", "High load, very coarse, humid climate grass", 4.0, 30, 0.022957, 0.045914, 0, 0.33517, 0, 1500, 1300, 1500, true},
	{109, "GR9", "Very high load, humid climate grass", 5.0, 40, 0.045914, 0.045914, 0, 0.413223, 0, 1800, 1600, 1500, true},

	// Grass-shrub (GS) - dynamic
	{121, "GS1", "Low load, dry climate grass-shrub", 0.9, 15, 0.009183, 0, 0, 0.022957, 0.029844, 2000, 1800, 1500, true},
	{122, "GS2", "Moderate load, dry climate grass-shrub", 1.5, 15, 0.022957, 0.022957, 0, 0.027548, 0.045914, 2000, 1800, 1500, true},
	{123, "GS3", "Moderate load, humid climate grass-shrub", 1.8, 40, 0.013774, 0.011478, 0, 0.066575, 0.057392, 1800, 1600, 1500, true},
	{124, "GS4", "High load, humid climate grass-shrub", 2.1, 40, 0.087236, 0.013774, 0.004591, 0.156107, 0.325987, 1800, 1600, 1500, true},

	// Shrub (SH) - mostly static, SH1 and SH9 dynamic
	{141, "SH1", "Low load, dry climate shrub", 1.0, 15, 0.011478, 0.011478, 0, 0.006887, 0.059688, 2000, 1800, 1600, true},
	{142, "SH2", "Moderate load, dry climate shrub", 1.0, 15, 0.061983, 0.110193, 0.034435, 0, 0, 2000, 1500, 1600, false},
	{143, "SH3", "Moderate load, humid climate shrub", 2.4, 40, 0.020661, 0.137741, 0, 0, 0.071166, 1600, 1500, 1400, false},
	{144, "SH4", "Low load, humid climate timber-shrub", 3.0, 30, 0.039027, 0.052801, 0.009183, 0, 0.11708, 1600, 1500, 1600, false},
	{145, "SH5", "High load, dry climate shrub", 6.0, 15, 0.165289, 0.096419, 0, 0, 0, 750, 1500, 1600, false},
	{146, "SH6", "Low load, humid climate shrub", 2.0, 30, 0.13315, 0.066575, 0, 0, 0.064279, 750, 1500, 1600, false},
	{147, "SH7", "Very high load, dry climate shrub", 6.0, 15, 0.160698, 0.243343, 0.10101, 0, 0.156107, 750, 1500, 1600, false},
	{148, "SH8", "High load, humid climate shrub", 3.0, 40, 0.094123, 0.156107, 0.039027, 0, 0.199725, 750, 1500, 1600, false},
	{149, "SH9", "Very high load, humid climate shrub", 4.4, 40, 0.206612, 0.112489, 0, 0.071166, 0.321396, 750, 1800, 1500, true},

	// Timber-understory (TU)
	{161, "TU1", "Light load, dry climate timber-grass-shrub", 0.6, 20, 0.009183, 0.041322, 0.068871, 0.009183, 0.041322, 2000, 1800, 1600, true},
	{162, "TU2", "Moderate load, humid climate timber-shrub", 1.0, 30, 0.043618, 0.082645, 0.057392, 0, 0.009183, 2000, 1500, 1600, false},
	{163, "TU3", "Moderate load, humid climate timber-grass-shrub", 1.3, 30, 0.050505, 0.006887, 0.011478, 0.029844, 0.050505, 1800, 1600, 1400, true},
	{164, "TU4", "Dwarf conifer with understory", 0.5, 12, 0.206612, 0, 0, 0, 0.091827, 2300, 1500, 2000, false},
	{165, "TU5", "Very high load, dry climate timber-shrub", 1.0, 25, 0.183655, 0.183655, 0.137741, 0, 0.137741, 1500, 1500, 750, false},

	// Timber litter (TL) - all static
	{181, "TL1", "Low load, compact conifer litter", 0.2, 30, 0.045914, 0.10101, 0.165289, 0, 0, 2000, 1500, 1500, false},
	{182, "TL2", "Low load broadleaf litter", 0.2, 25, 0.064279, 0.105601, 0.055096, 0, 0, 2000, 1500, 1500, false},
	{183, "TL3", "Moderate load conifer litter", 0.3, 20, 0.022957, 0.10101, 0.128558, 0, 0, 2000, 1500, 1500, false},
	{184, "TL4", "Small downed logs", 0.4, 25, 0.022957, 0.068871, 0.192837, 0, 0, 2000, 1500, 1500, false},
	{185, "TL5", "High load conifer litter", 0.4, 25, 0.052801, 0.114784, 0.20202, 0, 0.027548, 2000, 1500, 1600, false},
	{186, "TL6", "Moderate load broadleaf litter", 0.3, 25, 0.110193, 0.055096, 0.055096, 0, 0, 2000, 1500, 1500, false},
	{187, "TL7", "Large downed logs", 0.4, 25, 0.013774, 0.064279, 0.371901, 0, 0, 2000, 1500, 1500, false},
	{188, "TL8", "Long-needle litter", 0.3, 35, 0.266299, 0.064279, 0.050505, 0, 0, 1800, 1500, 1500, false},
	{189, "TL9", "Very high load broadleaf litter", 0.6, 35, 0.305326, 0.151515, 0.190542, 0, 0, 1800, 1500, 1600, false},

	// Slash-blowdown (SB) - all static
	{201, "SB1", "Low load activity fuel", 1.0, 25, 0.068871, 0.137741, 0.505051, 0, 0, 2000, 1500, 1500, false},
	{202, "SB2", "Moderate load activity fuel or low load blowdown", 1.0, 25, 0.206612, 0.195133, 0.183655, 0, 0, 2000, 1500, 1500, false},
	{203, "SB3", "High load activity fuel or moderate load blowdown", 1.2, 25, 0.252525, 0.126263, 0.137741, 0, 0, 2000, 1500, 1500, false},
	{204, "SB4", "High load blowdown", 2.7, 25, 0.241047, 0.160698, 0.241047, 0, 0, 2000, 1500, 1600, false},
}
