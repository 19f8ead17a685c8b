// Package lfo provides control-rate signal generators advanced one sample
// at a time: a free-running phasor and a bounded random walk. Both are
// deterministic given their construction parameters and are meant to drive
// modulated delay reads and window lookups inside effect kernels.
package lfo
