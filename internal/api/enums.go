package api

// Enumerations use the exact wire tokens the monitoring API documents.
// String-typed enums stay open: a token the vendor adds later decodes as
// an unlisted value instead of failing.

// SortOrder orders list results.
type SortOrder string

const (
	SortAscending  SortOrder = "ASC"
	SortDescending SortOrder = "DESC"
)

// SiteSortBy selects the site property a sites list is sorted on.
type SiteSortBy string

const (
	SiteSortByName             SiteSortBy = "Name"
	SiteSortByCountry          SiteSortBy = "Country"
	SiteSortByState            SiteSortBy = "State"
	SiteSortByCity             SiteSortBy = "City"
	SiteSortByAddress          SiteSortBy = "Address"
	SiteSortByZip              SiteSortBy = "Zip"
	SiteSortByStatus           SiteSortBy = "Status"
	SiteSortByPeakPower        SiteSortBy = "PeakPower"
	SiteSortByInstallationDate SiteSortBy = "InstallationDate"
	SiteSortByAmount           SiteSortBy = "Amount"
	SiteSortByMaxSeverity      SiteSortBy = "MaxSeverity"
	SiteSortByCreationTime     SiteSortBy = "CreationTime"
)

// AccountSortBy selects the account property an accounts list is sorted on.
type AccountSortBy string

const (
	AccountSortByName    AccountSortBy = "Name"
	AccountSortByCountry AccountSortBy = "Country"
	AccountSortByCity    AccountSortBy = "City"
	AccountSortByAddress AccountSortBy = "Address"
	AccountSortByZip     AccountSortBy = "Zip"
	AccountSortByFax     AccountSortBy = "Fax"
	AccountSortByPhone   AccountSortBy = "Phone"
	AccountSortByNotes   AccountSortBy = "Notes"
)

// SiteStatus is a site's operational status, also usable as a list filter.
type SiteStatus string

const (
	SiteStatusActive               SiteStatus = "Active"
	SiteStatusPending              SiteStatus = "Pending"
	SiteStatusPendingCommunication SiteStatus = "PendingCommunication"
	SiteStatusDisabled             SiteStatus = "Disabled"
	// SiteStatusAll is only meaningful as a filter value.
	SiteStatusAll SiteStatus = "All"
)

// TimeUnit is the aggregation granularity for measurement series.
type TimeUnit string

const (
	TimeUnitQuarterOfAnHour TimeUnit = "QUARTER_OF_AN_HOUR"
	TimeUnitHour            TimeUnit = "HOUR"
	TimeUnitDay             TimeUnit = "DAY"
	TimeUnitWeek            TimeUnit = "WEEK"
	TimeUnitMonth           TimeUnit = "MONTH"
	TimeUnitYear            TimeUnit = "YEAR"
)

// MeterType is a measurement channel for energy/power flow.
type MeterType string

const (
	MeterProduction  MeterType = "Production"
	MeterConsumption MeterType = "Consumption"
	// MeterSelfConsumption is a virtual meter calculated from the others.
	MeterSelfConsumption MeterType = "SelfConsumption"
	// MeterFeedIn measures export to the grid.
	MeterFeedIn MeterType = "FeedIn"
	// MeterPurchased measures import from the grid.
	MeterPurchased MeterType = "Purchased"
)

// MeterForm distinguishes hardware meters from calculated ones.
type MeterForm string

const (
	MeterFormPhysical MeterForm = "physical"
	MeterFormVirtual  MeterForm = "virtual"
)

// InverterMode is the operating mode an inverter reports in telemetry.
type InverterMode string

const (
	InverterModeOff          InverterMode = "OFF"
	InverterModeSleeping     InverterMode = "SLEEPING" // night mode
	InverterModeStarting     InverterMode = "STARTING" // pre-production
	InverterModeMPPT         InverterMode = "MPPT"     // producing
	InverterModeThrottled    InverterMode = "THROTTLED"
	InverterModeShuttingDown InverterMode = "SHUTTING_DOWN"
	InverterModeFault        InverterMode = "FAULT"
	InverterModeStandby      InverterMode = "STANDBY"

	InverterModeLockedStandby        InverterMode = "LOCKED_STDBY"
	InverterModeLockedFireFighters   InverterMode = "LOCKED_FIRE_FIGHTERS"
	InverterModeLockedForceShutdown  InverterMode = "LOCKED_FORCE_SHUTDOWN"
	InverterModeLockedCommTimeout    InverterMode = "LOCKED_COMM_TIMEOUT"
	InverterModeLockedInvTrip        InverterMode = "LOCKED_INV_TRIP"
	InverterModeLockedInvArcDetected InverterMode = "LOCKED_INV_ARC_DETECTED"
	InverterModeLockedDG             InverterMode = "LOCKED_DG"
	InverterModeLockedPhaseBalancer  InverterMode = "LOCKED_PHASE_BALANCER"
	InverterModeLockedPreCommission  InverterMode = "LOCKED_PRE_COMMISSIONING"
	InverterModeLockedInternal       InverterMode = "LOCKED_INTERNAL"
)

// OperationMode is the grid relationship an inverter reports.
type OperationMode int

const (
	OperationOnGrid OperationMode = 0
	// OperationOffGrid runs from PV or battery.
	OperationOffGrid OperationMode = 1
	// OperationOffGridWithGenerator has a generator (e.g. diesel) present.
	OperationOffGridWithGenerator OperationMode = 2
)

// SystemUnits selects the unit system for environmental benefit figures.
type SystemUnits string

const (
	UnitsMetrics  SystemUnits = "Metrics"
	UnitsImperial SystemUnits = "Imperial"
)

// EnergyUnit is the unit of an energy measurement series.
type EnergyUnit string

const EnergyWattHour EnergyUnit = "Wh"

// PowerUnit is the unit of a power measurement series.
type PowerUnit string

const (
	PowerWatt     PowerUnit = "W"
	PowerKilowatt PowerUnit = "kW"
)

// Measurer identifies what produced a measurement.
type Measurer string

const MeasuredByInverter Measurer = "INVERTER"

// PowerFlowElement is a node of the site's current power distribution
// graph.
type PowerFlowElement string

const (
	FlowGrid    PowerFlowElement = "GRID"
	FlowLoad    PowerFlowElement = "Load"
	FlowPV      PowerFlowElement = "PV"
	FlowStorage PowerFlowElement = "Storage"
)

// PowerFlowElementStatus is the state of a power flow element.
type PowerFlowElementStatus string

const (
	FlowStatusActive   PowerFlowElementStatus = "Active"
	FlowStatusIdle     PowerFlowElementStatus = "Idle"
	FlowStatusInactive PowerFlowElementStatus = "Inactive"
	FlowStatusDisabled PowerFlowElementStatus = "Disabled"
)

// BatteryState is the numeric battery status in storage telemetry.
type BatteryState int

const (
	BatteryInvalid           BatteryState = 0
	BatteryStandby           BatteryState = 1
	BatteryThermalManagement BatteryState = 2
	BatteryEnabled           BatteryState = 3
	BatteryFault             BatteryState = 4
)

// GasEmissionUnit is the mass unit for gas emission savings.
type GasEmissionUnit string

const (
	EmissionKg GasEmissionUnit = "kg"
	EmissionLb GasEmissionUnit = "lb"
)

// CommunicationMethod is the interface equipment uses to reach the
// monitoring server.
type CommunicationMethod string

const CommunicationEthernet CommunicationMethod = "ETHERNET"

// SensorType categorizes an environmental sensor.
type SensorType string

const (
	SensorIrradiance  SensorType = "IRRADIANCE"
	SensorTemperature SensorType = "TEMPERATURE"
)

// SensorMeasurement names the quantity a sensor measures.
type SensorMeasurement string

const (
	MeasurementGlobalHorizontalIrradiance SensorMeasurement = "SensorGlobalHorizontalIrradiance"
	MeasurementDiffusedIrradiance         SensorMeasurement = "SensorDiffusedIrradiance"
	MeasurementAmbientTemperature         SensorMeasurement = "SensorAmbientTemperature"
)
