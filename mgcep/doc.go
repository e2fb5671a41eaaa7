// Package mgcep는 mel-generalized cepstrum(MGC)을 파워 스펙트럼 포락선으로 변환한다.
//
// 변환은 다음 단계를 차례로 거친다.
//   - all-pass 주파수 워핑(FrequencyWarp)
//   - generalized cepstrum 차수/감마 변환(ConvertGeneralizedCepstrum)
//   - gain 정규화와 역정규화(NormalizeGain, DenormalizeGain)
//   - 위 단계를 묶은 MGC 변환(ConvertMGC)
//   - 실수 입력 FFT를 이용한 스펙트럼 복원(PowerSpectrum)
//
// 반복 호출 시 재할당을 피하려면 Workspace 또는 Converter를 재사용한다.
// 패키지 수준 함수는 내부 pool에서 Workspace를 꺼내 쓰므로 동시에 호출해도 안전하다.
package mgcep
