package spc

// EncodingMode selects how Y sample values are stored on disk.
type EncodingMode int

const (
	// EncodingIEEE stores each sample as an IEEE-754 single-precision
	// float. This is the default and by far the most widely supported
	// representation.
	EncodingIEEE EncodingMode = iota

	// EncodingLegacy stores each sample as a 32-bit fixed-point mantissa
	// under a shared per-subfile power-of-two exponent.
	EncodingLegacy
)

func (m EncodingMode) String() string {
	switch m {
	case EncodingIEEE:
		return "ieee"
	case EncodingLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// XUnit identifies the units of the X (and Z/W) axis (fxtype).
type XUnit uint8

const (
	XUnitArbitrary    XUnit = 0
	XUnitWavenumber   XUnit = 1 // cm-1
	XUnitMicrometers  XUnit = 2
	XUnitNanometers   XUnit = 3
	XUnitSeconds      XUnit = 4
	XUnitMinutes      XUnit = 5
	XUnitHertz        XUnit = 6
	XUnitKilohertz    XUnit = 7
	XUnitMegahertz    XUnit = 8
	XUnitMassUnits    XUnit = 9 // M/z
	XUnitPartsPerMil  XUnit = 10
	XUnitDays         XUnit = 11
	XUnitYears        XUnit = 12
	XUnitRamanShift   XUnit = 13 // cm-1
	XUnitElectronVolt XUnit = 14
	XUnitTextLabels   XUnit = 15
	XUnitDiodeNumber  XUnit = 16
	XUnitChannel      XUnit = 17
	XUnitDegrees      XUnit = 18
	XUnitFahrenheit   XUnit = 19
	XUnitCelsius      XUnit = 20
	XUnitKelvin       XUnit = 21
	XUnitDataPoints   XUnit = 22
	XUnitMilliseconds XUnit = 23
	XUnitMicroseconds XUnit = 24
	XUnitNanoseconds  XUnit = 25
	XUnitGigahertz    XUnit = 26
	XUnitCentimeters  XUnit = 27
	XUnitMeters       XUnit = 28
	XUnitMillimeters  XUnit = 29
	XUnitHours        XUnit = 30
	XUnitAngstroms    XUnit = 31
	XUnitDoubleIgram  XUnit = 255
)

// YUnit identifies the units of the Y axis (fytype).
type YUnit uint8

const (
	YUnitArbitrary         YUnit = 0
	YUnitInterferogram     YUnit = 1
	YUnitAbsorbance        YUnit = 2
	YUnitKubelkaMunk       YUnit = 3
	YUnitCounts            YUnit = 4
	YUnitVolts             YUnit = 5
	YUnitDegrees           YUnit = 6
	YUnitMilliamps         YUnit = 7
	YUnitMeters            YUnit = 8
	YUnitMillivolts        YUnit = 9
	YUnitLogDR             YUnit = 10
	YUnitPercent           YUnit = 11
	YUnitIntensity         YUnit = 12
	YUnitRelativeIntensity YUnit = 13
	YUnitEnergy            YUnit = 14
	YUnitDecibels          YUnit = 16
	YUnitAbundance         YUnit = 17
	YUnitRelativeAbundance YUnit = 18
	YUnitFahrenheit        YUnit = 19
	YUnitCelsius           YUnit = 20
	YUnitKelvin            YUnit = 21
	YUnitRefractiveIndex   YUnit = 22
	YUnitExtinctionCoeff   YUnit = 23
	YUnitReal              YUnit = 24
	YUnitImaginary         YUnit = 25
	YUnitComplex           YUnit = 26
	YUnitMilligrams        YUnit = 27
	YUnitGrams             YUnit = 28
	YUnitKilograms         YUnit = 29
	YUnitSpecificRotation  YUnit = 30
	YUnitTransmission      YUnit = 128
	YUnitReflectance       YUnit = 129
	YUnitValley            YUnit = 130
	YUnitEmission          YUnit = 131
)

// TechType identifies the instrumental technique (fexper).
type TechType uint8

const (
	TechGeneral      TechType = 0
	TechGC           TechType = 1
	TechChromatogram TechType = 2
	TechHPLC         TechType = 3
	TechFTIR         TechType = 4
	TechNIR          TechType = 5
	TechUVVis        TechType = 7
	TechXRay         TechType = 8
	TechMS           TechType = 9
	TechNMR          TechType = 10
	TechRaman        TechType = 11
	TechFluorescence TechType = 12
	TechAtomic       TechType = 13
	TechDiodeArray   TechType = 14
	TechThermal      TechType = 15
	TechCD           TechType = 16
	TechCNMR         TechType = 20
	TechHNMR         TechType = 21
	TechDNMR         TechType = 22
	TechANMR         TechType = 23
)

// SubFlag holds per-subfile flag bits (subflgs).
type SubFlag uint8

const (
	// SubChanged marks a subfile changed since acquisition.
	SubChanged SubFlag = 0x01
	// SubNoPeakTable marks that the peak table file should not be used.
	SubNoPeakTable SubFlag = 0x08
	// SubModified marks a subfile modified by arithmetic.
	SubModified SubFlag = 0x80
)

// ModFlag holds the spectral modification history bits (fmods). Each bit
// corresponds to a class of processing applied to the data.
type ModFlag uint32

const (
	ModAveraging      ModFlag = 1 << 1
	ModBaseline       ModFlag = 1 << 2
	ModComputation    ModFlag = 1 << 3
	ModDerivative     ModFlag = 1 << 4
	ModEnhancement    ModFlag = 1 << 6
	ModInterpolation  ModFlag = 1 << 9
	ModNoiseReduction ModFlag = 1 << 14
	ModOther          ModFlag = 1 << 15
	ModSubtraction    ModFlag = 1 << 19
	ModTruncation     ModFlag = 1 << 20
	ModWhenCollected  ModFlag = 1 << 23
	ModXConversion    ModFlag = 1 << 24
	ModYConversion    ModFlag = 1 << 25
	ModZap            ModFlag = 1 << 26
)

// ProcessCode identifies post-collection processing (fprocs).
type ProcessCode uint8

const (
	ProcessNone         ProcessCode = 0
	ProcessCompute      ProcessCode = 1
	ProcessComputeDLL   ProcessCode = 2
	ProcessTransmission ProcessCode = 4
	ProcessAbsorbance   ProcessCode = 8
	ProcessKubelkaMunk  ProcessCode = 12
	ProcessPeakPick     ProcessCode = 32
	ProcessSearch       ProcessCode = 64
	ProcessUser         ProcessCode = 128
)
